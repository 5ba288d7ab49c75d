package middleware

import (
	"time"

	"github.com/webbplats/site/internal/api/constants"
	"github.com/webbplats/site/internal/logging"
	"github.com/webbplats/site/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs method, path, status, latency, client IP and request ID
// of every request. Requests in skipPaths are not logged.
func RequestLogger(logger *logging.Logger, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		if _, ok := skip[path]; ok {
			return
		}

		logger.LogHTTPRequest(
			c.Request.Method,
			path,
			utils.GetRealIP(c),
			c.GetString(constants.ContextKeyRequestID),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
