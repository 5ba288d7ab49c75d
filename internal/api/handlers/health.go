package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/webbplats/site/internal/api/dto/common"
	"github.com/webbplats/site/internal/utils"
	"github.com/webbplats/site/internal/version"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// healthTimeout bounds the cache ping.
const healthTimeout = 2 * time.Second

type HealthHandler struct {
	cache redis.UniversalClient
}

// NewHealthHandler creates a health handler. cache may be nil when the
// in-memory content cache is used.
func NewHealthHandler(cache redis.UniversalClient) *HealthHandler {
	return &HealthHandler{cache: cache}
}

func (h *HealthHandler) Check(c *gin.Context) {
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		if err := h.cache.Ping(ctx).Err(); err != nil {
			utils.HandleAPIError(c, err, http.StatusServiceUnavailable, common.ErrCodeUnavailable, "Cache connection error")
			return
		}
	}

	c.JSON(http.StatusOK, common.NewMessageResponse("Health check OK"))
}

// Version reports build information.
func (h *HealthHandler) Version(c *gin.Context) {
	utils.HandleSuccess(c, version.GetBuildInfo())
}
