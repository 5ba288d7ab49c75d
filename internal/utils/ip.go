package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UnknownIP is reported when no proxy header identifies the client.
const UnknownIP = "unknown"

// ClientIPFromHeaders extracts the client IP from proxy headers.
// X-Forwarded-For wins over X-Real-IP; the leftmost forwarded entry is the client.
func ClientIPFromHeaders(h http.Header) string {
	if forwardedFor := h.Get("X-Forwarded-For"); forwardedFor != "" {
		// Format: client, proxy1, proxy2, ...
		if clientIP := strings.TrimSpace(strings.Split(forwardedFor, ",")[0]); clientIP != "" {
			return clientIP
		}
	}

	if ip := strings.TrimSpace(h.Get("X-Real-IP")); ip != "" {
		return ip
	}

	return UnknownIP
}

// GetRealIP extracts the client IP from the request's proxy headers
func GetRealIP(c *gin.Context) string {
	return ClientIPFromHeaders(c.Request.Header)
}
