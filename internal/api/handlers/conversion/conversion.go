// Package conversion 食譜單位換算 API
package conversion

import (
	"errors"
	"net/http"

	engine "recipe-converter/internal/core/conversion"
	recipeService "recipe-converter/internal/core/recipe"
	"recipe-converter/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 換算處理程序
type Handler struct {
	service *recipeService.ConversionService
	debug   bool
}

// NewHandler 創建新的換算處理程序
func NewHandler(service *recipeService.ConversionService, debug bool) *Handler {
	return &Handler{service: service, debug: debug}
}

// HandleConvert 換算整份食譜
func (h *Handler) HandleConvert(c *gin.Context) {
	requestID := requestIDFrom(c)

	var req ConvertRecipeRequest
	if err := common.DecodeJSON(c.Request.Body, &req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.abort(c, common.ErrPayloadTooLarge, err, requestID)
			return
		}
		h.abort(c, common.ErrInvalidRequest, err, requestID)
		return
	}

	result, err := h.service.Convert(c.Request.Context(), recipeService.ConversionRequest{
		RecipeText: req.RecipeText,
		From:       req.FromUnitSystem,
		To:         req.ToUnitSystem,
	}, requestID)
	if err != nil {
		var custom *common.CustomError
		if errors.As(err, &custom) {
			h.abort(c, custom, nil, requestID)
			return
		}
		if common.IsValidationError(err) {
			h.abort(c, common.NewError(common.ErrCodeInvalidRequest, err.Error(), http.StatusBadRequest, err), nil, requestID)
			return
		}
		h.abort(c, common.ErrInternalError, err, requestID)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleUnitTable 單位別名與各制通用容量
func (h *Handler) HandleUnitTable(c *gin.Context) {
	c.JSON(http.StatusOK, UnitTableResponse{
		Aliases: engine.UnitAliases(),
		Volumes: h.service.Tables().Volumes(),
	})
}

// HandleIngredientTable 食材資料表
func (h *Handler) HandleIngredientTable(c *gin.Context) {
	tables := h.service.Tables()
	keys := tables.ProfileKeys()

	ingredients := make(map[string]engine.Profile, len(keys))
	for _, key := range keys {
		if p, ok := tables.Profile(key); ok {
			ingredients[key] = p
		}
	}
	c.JSON(http.StatusOK, IngredientTableResponse{Ingredients: ingredients})
}

// abort 記錄並回傳錯誤。cause 非 nil 時作為 details（僅 debug 模式顯示）
func (h *Handler) abort(c *gin.Context, base *common.CustomError, cause error, requestID string) {
	e := base
	if cause != nil {
		e = common.NewError(base.Code, base.Message, base.Status, cause)
	}

	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.String("code", e.Code),
		zap.Error(e),
	}
	if e.Status >= http.StatusInternalServerError {
		common.LogError("換算請求失敗", fields...)
	} else {
		common.LogWarn("換算請求無效", fields...)
	}

	_ = c.Error(e)
	c.AbortWithStatusJSON(e.Status, e.Response(h.debug))
}

// requestIDFrom 取得 requestid 中間件產生的 ID，沒有時自行產生
func requestIDFrom(c *gin.Context) string {
	requestID := common.FirstNonEmpty(requestid.Get(c), c.GetHeader("X-Request-ID"))
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}
