package routes

import (
	"github.com/webbplats/site/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes. Per-IP limits are
// enforced by the contact gate itself.
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler) {
	router.POST("/contact", contact.Submit)
}
