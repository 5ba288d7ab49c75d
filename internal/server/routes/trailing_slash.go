package routes

import (
	"net/http"
	"strings"
)

// TrimTrailingSlash removes the need for strict trailing slash matching. It
// wraps the engine so the path is rewritten before the router matches it.
func TrimTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		// Remove trailing slashes if present (except for root path)
		if path != "/" && strings.HasSuffix(path, "/") {
			trimmed := strings.TrimRight(path, "/")
			if trimmed == "" {
				trimmed = "/"
			}
			r.URL.Path = trimmed
			r.URL.RawPath = ""
		}

		next.ServeHTTP(w, r)
	})
}
