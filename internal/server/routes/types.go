package routes

import (
	"net/http"

	"github.com/webbplats/site/internal/api/handlers"
)

// Handlers contains all the route handlers
type Handlers struct {
	Health  *handlers.HealthHandler
	Content *handlers.ContentHandler
	Contact *handlers.ContactHandler
	// Metrics serves the Prometheus exposition format; nil disables /metrics
	Metrics http.Handler
}
