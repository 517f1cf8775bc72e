package health

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"recipe-converter/internal/infrastructure/config"
	"recipe-converter/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatsFunc 回傳快取統計，未啟用快取時回傳 nil
type StatsFunc func() map[string]interface{}

// ReadyFunc 回傳非 nil 錯誤表示相依服務不可用
type ReadyFunc func(ctx context.Context) error

// readyTimeout 就緒檢查的等待上限
const readyTimeout = 2 * time.Second

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Cache     map[string]interface{} `json:"cache,omitempty"`
}

// Handler 健康檢查處理器
type Handler struct {
	cfg        *config.Config
	cacheStats StatsFunc
	ready      ReadyFunc
	started    time.Time
}

// NewHandler cacheStats 與 ready 可為 nil
func NewHandler(cfg *config.Config, cacheStats StatsFunc, ready ReadyFunc) *Handler {
	return &Handler{cfg: cfg, cacheStats: cacheStats, ready: ready, started: time.Now()}
}

// HealthCheck 健康檢查處理器
func (h *Handler) HealthCheck(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   h.cfg.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"uptime":     time.Since(h.started).Round(time.Second).String(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}
	if h.cacheStats != nil {
		response.Cache = h.cacheStats()
	}

	common.LogDebug("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查處理器。換算表在啟動時載入，只需確認快取後端可連線
func (h *Handler) ReadinessCheck(c *gin.Context) {
	if h.ready != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()
		if err := h.ready(ctx); err != nil {
			common.LogWarn("就緒檢查失敗", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, common.ErrServiceUnavailable.Response(false))
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":        "ready",
		"cache_enabled": h.cfg.Cache.Enabled,
	})
}

// LivenessCheck 存活檢查處理器
func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
