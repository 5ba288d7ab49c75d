package routes

import (
	"github.com/webbplats/site/internal/api/middleware"
	"github.com/webbplats/site/internal/logging"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// GlobalOptions configures middleware shared by every route
type GlobalOptions struct {
	ServiceName string
	CORS        middleware.CORSConfig
}

// Setup configures all route groups. contentRate throttles the read API only;
// the contact route is limited per IP by its own ledger.
func Setup(router *gin.Engine, h *Handlers, contentRate middleware.RateLimitConfig) {
	logger := logging.GetGlobalLogger()

	// Operational endpoints
	SetupHealthRoutes(router, h.Health, h.Metrics)

	// Contact form (public, same path the site's form posts to)
	SetupContactRoutes(router.Group("/api"), h.Contact)

	// Read-only content API
	SetupContentRoutes(router.Group("/api/v1", middleware.RateLimitMiddleware(contentRate)), h.Content)

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, logger *logging.Logger, opts GlobalOptions) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(otelgin.Middleware(opts.ServiceName))
	router.Use(middleware.RequestLogger(logger, "/health", "/metrics"))
	router.Use(middleware.CORS(opts.CORS))
	router.Use(middleware.SecurityHeaders())
}
