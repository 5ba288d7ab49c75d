package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/webbplats/site/internal/api/dto/common"
	contentdto "github.com/webbplats/site/internal/api/dto/v1/content"
	"github.com/webbplats/site/internal/api/mapper"
	"github.com/webbplats/site/internal/config"
	"github.com/webbplats/site/internal/content"
	"github.com/webbplats/site/internal/site"
	"github.com/webbplats/site/internal/utils"

	"github.com/gin-gonic/gin"
)

// ContentSource is the read side of the content client.
type ContentSource interface {
	FetchHomepageConfig(ctx context.Context) content.Document
	FetchPosts(ctx context.Context, count int) []content.Item
	FetchPostBySlug(ctx context.Context, slug string) *content.Item
	FetchPageBySlug(ctx context.Context, slug string) *content.Item
	FetchServicePageSlugs(ctx context.Context, pathFilter string) []string
	FetchCategories(ctx context.Context) []content.Category
	FetchCategoryBySlug(ctx context.Context, slug string) *content.Category
	FetchPostsByCategory(ctx context.Context, id, count int) []content.Item
	FetchAllPostSlugs(ctx context.Context) []string
	FetchAllCategorySlugs(ctx context.Context) []string
}

// Slug kinds served by Slugs
const (
	SlugKindPosts      = "posts"
	SlugKindCategories = "categories"
	SlugKindServices   = "services"
)

type ContentHandler struct {
	source            ContentSource
	site              config.SiteConfig
	serviceCandidates []string
}

func NewContentHandler(source ContentSource, siteCfg config.SiteConfig, serviceCandidates []string) *ContentHandler {
	return &ContentHandler{
		source:            source,
		site:              siteCfg,
		serviceCandidates: serviceCandidates,
	}
}

func (h *ContentHandler) Homepage(c *gin.Context) {
	utils.HandleSuccess(c, h.source.FetchHomepageConfig(c.Request.Context()))
}

func (h *ContentHandler) Navigation(c *gin.Context) {
	homepage := h.source.FetchHomepageConfig(c.Request.Context())
	utils.HandleSuccess(c, site.BuildNavigation(h.site, homepage))
}

func (h *ContentHandler) Footer(c *gin.Context) {
	homepage := h.source.FetchHomepageConfig(c.Request.Context())
	utils.HandleSuccess(c, site.BuildFooter(h.site, homepage))
}

// ListPosts returns post summaries. The count query parameter defaults to
// content.DefaultPostCount.
func (h *ContentHandler) ListPosts(c *gin.Context) {
	count, ok := queryCount(c)
	if !ok {
		return
	}
	posts := h.source.FetchPosts(c.Request.Context(), count)
	utils.HandleSuccess(c, mapper.ItemsToPostSummaries(posts))
}

func (h *ContentHandler) GetPost(c *gin.Context) {
	post := h.source.FetchPostBySlug(c.Request.Context(), c.Param("slug"))
	if post == nil {
		utils.HandleNotFound(c, "Post")
		return
	}
	utils.HandleSuccess(c, post)
}

func (h *ContentHandler) GetPage(c *gin.Context) {
	page := h.source.FetchPageBySlug(c.Request.Context(), c.Param("slug"))
	if page == nil {
		utils.HandleNotFound(c, "Page")
		return
	}
	utils.HandleSuccess(c, page)
}

// ServicesPage returns the first existing services landing page.
func (h *ContentHandler) ServicesPage(c *gin.Context) {
	page := site.FirstPage(c.Request.Context(), h.source, h.serviceCandidates...)
	if page == nil {
		utils.HandleNotFound(c, "Services page")
		return
	}
	utils.HandleSuccess(c, page)
}

func (h *ContentHandler) ListCategories(c *gin.Context) {
	utils.HandleSuccess(c, h.source.FetchCategories(c.Request.Context()))
}

// GetCategory returns a category and summaries of its posts.
func (h *ContentHandler) GetCategory(c *gin.Context) {
	ctx := c.Request.Context()

	category := h.source.FetchCategoryBySlug(ctx, c.Param("slug"))
	if category == nil {
		utils.HandleNotFound(c, "Category")
		return
	}

	count, ok := queryCount(c)
	if !ok {
		return
	}
	posts := h.source.FetchPostsByCategory(ctx, category.ID, count)

	utils.HandleSuccess(c, contentdto.CategoryPostsResponse{
		Category: category,
		Posts:    mapper.ItemsToPostSummaries(posts),
	})
}

// Slugs lists slugs for static path generation.
func (h *ContentHandler) Slugs(c *gin.Context) {
	ctx := c.Request.Context()
	kind := c.Param("kind")

	var slugs []string
	switch kind {
	case SlugKindPosts:
		slugs = h.source.FetchAllPostSlugs(ctx)
	case SlugKindCategories:
		slugs = h.source.FetchAllCategorySlugs(ctx)
	case SlugKindServices:
		slugs = h.source.FetchServicePageSlugs(ctx, "")
	default:
		utils.HandleNotFound(c, "Slug kind")
		return
	}

	utils.HandleSuccess(c, contentdto.SlugsResponse{Kind: kind, Slugs: slugs})
}

// queryCount parses the optional count parameter. It writes a 400 response
// and returns false when the value is not an integer.
func queryCount(c *gin.Context) (int, bool) {
	raw := c.Query("count")
	if raw == "" {
		return 0, true
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, common.NewErrorResponse(common.ErrCodeBadRequest, "count must be an integer", nil))
		return 0, false
	}
	return count, true
}
