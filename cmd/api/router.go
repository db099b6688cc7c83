package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"reviewcard-backend/internal/shared/middleware"
	"reviewcard-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupSessionRoutes(v1, c)
		setupCardRoutes(v1, c)
		setupExportRoutes(v1, c)
	}

	return router
}

// ========================================
// SESSION ROUTES
// ========================================
func setupSessionRoutes(v1 *gin.RouterGroup, c *container.Container) {
	// Session bootstrap là route public duy nhất ngoài health check
	v1.POST("/sessions", c.CardHandler.StartSession)
}

// ========================================
// CARD ROUTES
// ========================================
func setupCardRoutes(v1 *gin.RouterGroup, c *container.Container) {
	cards := v1.Group("/cards")
	cards.Use(middleware.SessionMiddleware(c.JWTManager))
	{
		cards.GET("/me", c.CardHandler.GetCard)
		cards.PATCH("/me", c.CardHandler.UpdateCard)
		cards.POST("/me/rating", c.CardHandler.Rate)
		cards.POST("/me/reset", c.CardHandler.Reset)
		cards.POST("/me/images/:slot", c.CardHandler.UploadImage)
		cards.DELETE("/me/images/:slot", c.CardHandler.RemoveImage)
		cards.GET("/me/preview", c.ExportHandler.Preview)
	}
}

// ========================================
// EXPORT ROUTES
// ========================================
func setupExportRoutes(v1 *gin.RouterGroup, c *container.Container) {
	exports := v1.Group("/exports")
	exports.Use(middleware.SessionMiddleware(c.JWTManager))
	{
		exports.POST("/snapshot", c.ExportHandler.CreateSnapshot)
		exports.POST("/document", c.ExportHandler.CreateDocument)
		exports.GET("/:id", c.ExportHandler.GetJob)
		exports.GET("/:id/download", c.ExportHandler.Download)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   getEnv("APP_VERSION", "1.0.0"),
			"services":  gin.H{},
		}

		// Check redis
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check object storage
		storageStatus := "ok"
		if appCtx.Storage == nil {
			storageStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Storage.HealthCheck(ctx); err != nil {
				storageStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		health["services"] = gin.H{
			"redis":   redisStatus,
			"storage": storageStatus,
		}

		statusCode := http.StatusOK
		if redisStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
