package api

import (
	"net/http"
	"time"

	"recipe-converter/internal/api/handlers/conversion"
	"recipe-converter/internal/api/handlers/health"
	"recipe-converter/internal/api/middleware"
	recipeService "recipe-converter/internal/core/recipe"
	"recipe-converter/internal/infrastructure/config"
	"recipe-converter/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 未設定時的請求體大小限制 (1MB)
const defaultMaxBodySize = 1 << 20

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, svc *recipeService.ConversionService) *gin.Engine {
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// 註冊基礎中間件，requestid 需在 Logger 之前
	router.Use(middleware.Recovery())
	router.Use(requestid.New())
	router.Use(middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	maxBody := cfg.Server.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodySize
	}
	router.Use(middleware.BodySizeLimit(maxBody))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, common.ErrNotFound.Response(false))
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, common.ErrMethodNotAllowed.Response(false))
	})

	// 健康檢查路由
	healthHandler := health.NewHandler(cfg, svc.CacheStats, svc.Ping)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	{
		conversionHandler := conversion.NewHandler(svc, cfg.App.Debug)

		conversionGroup := api.Group("/conversion")
		{
			conversionGroup.POST("", conversionHandler.HandleConvert)
			conversionGroup.GET("/units", conversionHandler.HandleUnitTable)
			conversionGroup.GET("/ingredients", conversionHandler.HandleIngredientTable)
		}
	}

	common.LogInfo("Router setup completed",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Int64("max_body_size", maxBody),
	)

	return router
}
