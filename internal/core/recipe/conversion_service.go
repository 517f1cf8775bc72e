// Package recipe 食譜換算服務：驗證請求、查詢快取並呼叫換算引擎。
package recipe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"recipe-converter/internal/core/cache"
	"recipe-converter/internal/core/conversion"
	"recipe-converter/internal/pkg/common"

	"go.uber.org/zap"
)

// ConversionService 食譜換算服務
type ConversionService struct {
	converter *conversion.Converter
	cache     cache.Store
}

// NewConversionService 創建換算服務，store 可為 nil
func NewConversionService(converter *conversion.Converter, store cache.Store) *ConversionService {
	return &ConversionService{
		converter: converter,
		cache:     store,
	}
}

// ConversionRequest 換算請求。RecipeText 為 nil 表示未提供，系統標籤空白時預設為公制
type ConversionRequest struct {
	RecipeText *string
	From       string
	To         string
}

// Convert 換算整份食譜。只有請求本身無效時才回傳錯誤，單行解析失敗不影響其他行。
func (s *ConversionService) Convert(ctx context.Context, req ConversionRequest, requestID string) (*conversion.Result, error) {
	if req.RecipeText == nil {
		return nil, common.NewValidationError("recipe_text is required")
	}
	from, err := parseSystem("from_unit_system", req.From)
	if err != nil {
		return nil, err
	}
	to, err := parseSystem("to_unit_system", req.To)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	key := cache.Key(string(from), string(to), *req.RecipeText)
	if cached, ok := s.getFromCache(ctx, key); ok {
		return cached, nil
	}

	result := &conversion.Result{
		ConvertedRecipe: s.converter.ConvertRecipe(*req.RecipeText, from, to),
	}
	s.setToCache(ctx, key, result)

	common.LogConversion(string(from), string(to), len(result.ConvertedRecipe), time.Since(start), requestID)
	return result, nil
}

// Tables 換算使用的查詢表
func (s *ConversionService) Tables() *conversion.Tables {
	return s.converter.Tables()
}

// CacheStats 快取統計，未啟用快取時回傳 nil
func (s *ConversionService) CacheStats() map[string]interface{} {
	if provider, ok := s.cache.(cache.StatsProvider); ok {
		return provider.GetStats()
	}
	return nil
}

// Ping 檢查快取後端是否可用，記憶體快取或未啟用快取時恆為可用
func (s *ConversionService) Ping(ctx context.Context) error {
	if p, ok := s.cache.(cache.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// parseSystem 缺省為公制，無法辨識時回傳 UNSUPPORTED_SYSTEM
func parseSystem(field, tag string) (conversion.System, error) {
	if tag == "" {
		return conversion.SystemMetric, nil
	}
	sys, ok := conversion.ParseSystem(tag)
	if !ok {
		return "", common.NewError(common.ErrCodeUnsupportedSystem,
			fmt.Sprintf("unsupported %s %q", field, tag), http.StatusBadRequest, nil)
	}
	return sys, nil
}

// getFromCache 從緩存獲取數據，任何錯誤都視為未命中
func (s *ConversionService) getFromCache(ctx context.Context, key string) (*conversion.Result, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, common.ErrCacheMiss) {
			common.LogWarn("讀取快取失敗", zap.Error(err))
		}
		return nil, false
	}

	var result conversion.Result
	if err := common.ParseJSON(data, &result); err != nil {
		common.LogWarn("快取內容無法解析", zap.Error(err))
		return nil, false
	}
	return &result, true
}

// setToCache 將結果存入緩存，失敗只記錄日誌
func (s *ConversionService) setToCache(ctx context.Context, key string, result *conversion.Result) {
	if s.cache == nil {
		return
	}
	data, err := common.ToJSON(result)
	if err != nil {
		common.LogWarn("快取序列化失敗", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, data); err != nil {
		common.LogWarn("寫入快取失敗", zap.Error(err))
	}
}
