package routes

import (
	"net/http"

	"github.com/webbplats/site/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupHealthRoutes configures health, version and metrics endpoints
func SetupHealthRoutes(router *gin.Engine, health *handlers.HealthHandler, metrics http.Handler) {
	router.GET("/health", health.Check)
	router.GET("/version", health.Version)
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics))
	}
}
