package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webbplats/site/internal/api/handlers"
	"github.com/webbplats/site/internal/config"
	"github.com/webbplats/site/internal/contact"
	"github.com/webbplats/site/internal/content"
	"github.com/webbplats/site/internal/logging"
	"github.com/webbplats/site/internal/placeholder"
	"github.com/webbplats/site/internal/server/routes"
	"github.com/webbplats/site/internal/telemetry"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	wp := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(wp.Close)

	cfg := &config.Config{
		Environment: "test",
		Port:        "0",
		Site:        config.SiteConfig{Name: "Webbplats", NavItems: config.DefaultNavItems()},
		Content:     config.ContentConfig{APIURL: wp.URL},
	}

	metrics := telemetry.NewMetrics()
	client, err := content.New(cfg.Content, placeholder.New(placeholder.Values{SiteName: "Webbplats"}),
		content.WithHTTPClient(wp.Client()),
		content.WithLogger(logging.NewNop()),
		content.WithMetrics(metrics),
	)
	require.NoError(t, err)

	gate := contact.NewGate(contact.NewLedger(time.Minute, 3), contact.NewWebhookRelay("", nil),
		contact.WithGateLogger(logging.NewNop()),
		contact.WithGateMetrics(metrics),
	)

	return NewServer(cfg, &routes.Handlers{
		Health:  handlers.NewHealthHandler(nil),
		Content: handlers.NewContentHandler(client, cfg.Site, nil),
		Contact: handlers.NewContactHandler(gate),
		Metrics: metrics.Handler(),
	}, logging.NewNop())
}

func serve(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestServerRoutes(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/version", http.StatusOK},
		{http.MethodGet, "/api/v1/posts", http.StatusOK},
		{http.MethodGet, "/api/v1/posts/", http.StatusOK},
		{http.MethodGet, "/health/", http.StatusOK},
		{http.MethodGet, "/api/v1/navigation", http.StatusOK},
		{http.MethodGet, "/api/v1/homepage", http.StatusOK},
		{http.MethodGet, "/api/v1/slugs/posts", http.StatusOK},
		{http.MethodGet, "/api/v1/posts/saknas", http.StatusNotFound},
		{http.MethodGet, "/api/v1/nothing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := serve(s, tt.method, tt.path, "")
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestServerGlobalMiddleware(t *testing.T) {
	s := newTestServer(t)

	w := serve(s, http.MethodGet, "/health", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestServerContactWithoutWebhook(t *testing.T) {
	s := newTestServer(t)

	w := serve(s, http.MethodPost, "/api/contact", `{"name":"Anna","email":"anna@example.se","message":"Hej"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)

	metrics := serve(s, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), `site_contact_submissions_total{outcome="misconfigured"} 1`)
}

func TestServerContactBypassesContentThrottle(t *testing.T) {
	s := newTestServer(t)
	body := `{"name":"Anna","email":"anna@example.se","message":"Hej"}`

	for i := 0; i < 30; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i+1))
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, req)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEqual(t, http.StatusTooManyRequests, w.Code, "client %d", i)
		assert.Contains(t, resp, "message", "client %d", i)
		assert.NotContains(t, resp, "error", "client %d", i)
	}
}

func TestServerThrottlesContentAPI(t *testing.T) {
	s := newTestServer(t)

	var throttled int
	for i := 0; i < 60; i++ {
		w := serve(s, http.MethodGet, "/api/v1/categories", "")
		if w.Code == http.StatusTooManyRequests {
			throttled++
			assert.Contains(t, w.Body.String(), `"TOO_MANY_REQUESTS"`)
		}
	}
	assert.Positive(t, throttled)
}

func TestServerShutdownBeforeStart(t *testing.T) {
	s := newTestServer(t)
	assert.Equal(t, ":0", s.Addr())
	assert.NoError(t, s.Shutdown(context.Background()))
}
