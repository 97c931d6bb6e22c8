package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter creates a gin engine with all routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, RateLimiter).
//   - Adds request timeout handling (10 seconds).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the data-management and statistics routes.
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in
//     app.InitializeApp().
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
	)

	// Per-request timeout
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Data management
	router.POST("/assets/", handler.UploadPrices)
	router.PUT("/assets/", handler.MergePrices)
	router.GET("/assets/", handler.ListAssets)
	router.DELETE("/assets/:ticker", handler.DeleteAsset)

	// Statistics
	router.GET("/highest-volume/", handler.HighestVolume)
	router.GET("/lowest-closing-price/", handler.LowestClosingPrice)
	router.GET("/mean-daily-price/", handler.MeanDailyPrice)
	router.GET("/daily-variation/", handler.DailyVariation)
	router.GET("/consolidated-data/", handler.ConsolidatedData)

	return router
}
