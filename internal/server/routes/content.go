package routes

import (
	"github.com/webbplats/site/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupContentRoutes configures the read-only content routes
func SetupContentRoutes(router *gin.RouterGroup, content *handlers.ContentHandler) {
	router.GET("/homepage", content.Homepage)
	router.GET("/navigation", content.Navigation)
	router.GET("/footer", content.Footer)

	router.GET("/posts", content.ListPosts)
	router.GET("/posts/:slug", content.GetPost)
	router.GET("/pages/:slug", content.GetPage)
	router.GET("/services/page", content.ServicesPage)

	router.GET("/categories", content.ListCategories)
	router.GET("/categories/:slug", content.GetCategory)

	router.GET("/slugs/:kind", content.Slugs)
}
