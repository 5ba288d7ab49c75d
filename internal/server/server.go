// Package server hosts the site's HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/webbplats/site/internal/api/middleware"
	"github.com/webbplats/site/internal/config"
	"github.com/webbplats/site/internal/logging"
	"github.com/webbplats/site/internal/server/routes"
	"github.com/webbplats/site/internal/telemetry"

	"github.com/gin-gonic/gin"
)

const (
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 60 * time.Second
	idleTimeout       = 120 * time.Second
)

// Server represents the HTTP server
type Server struct {
	server *http.Server
	logger *logging.Logger
}

// NewServer creates a new server instance with all routes registered
func NewServer(cfg *config.Config, h *routes.Handlers, logger *logging.Logger) *Server {
	// Set release mode for production
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()

	routes.SetupGlobalMiddleware(router, logger, routes.GlobalOptions{
		ServiceName: telemetry.ServiceName,
		CORS: middleware.CORSConfig{
			Development:    !cfg.IsProduction(),
			AllowedOrigins: cfg.AllowedOrigins,
		},
	})
	routes.Setup(router, h, middleware.DefaultRateLimit)

	return &Server{
		server: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           routes.TrimTrailingSlash(router),
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
		},
		logger: logger,
	}
}

// Handler returns the handler served to clients, including path
// normalization ahead of routing
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start listens until the server is shut down
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}
