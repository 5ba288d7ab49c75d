// Package content reads posts, pages and categories from the WordPress REST
// API and the homepage configuration document.
//
// Fetch operations never return errors. Transport and HTTP failures are
// logged, counted and degrade to an empty result (or the bundled homepage
// document); a missing item is a nil result.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/webbplats/site/internal/config"
	"github.com/webbplats/site/internal/logging"
	"github.com/webbplats/site/internal/placeholder"
	"github.com/webbplats/site/internal/telemetry"
	"github.com/webbplats/site/internal/utils"
)

// Revalidation intervals per endpoint group.
const (
	postsTTL      = 5 * time.Minute
	postSlugsTTL  = time.Hour
	pageTTL       = 10 * time.Minute
	pageListTTL   = time.Hour
	categoriesTTL = time.Hour
	categoryTTL   = 10 * time.Minute
)

// maxBodySize caps a single API response.
const maxBodySize = 16 << 20

// StatusError reports a non-2xx response from a content backend.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d (%s)", e.Endpoint, e.StatusCode, http.StatusText(e.StatusCode))
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

// Client is safe for concurrent use.
type Client struct {
	apiURL        string
	homepageURL   string
	homepageToken string
	servicePath   string

	http       *http.Client
	cache      Cache
	logger     *logging.Logger
	metrics    *telemetry.Metrics
	normalizer *placeholder.Normalizer
	fallback   []byte
	now        func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the outbound HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithCache replaces the default in-memory cache.
func WithCache(cache Cache) Option {
	return func(c *Client) { c.cache = cache }
}

func WithLogger(logger *logging.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func WithMetrics(metrics *telemetry.Metrics) Option {
	return func(c *Client) { c.metrics = metrics }
}

// WithFallbackDocument replaces the homepage document used when the remote
// endpoint fails. doc must be valid JSON.
func WithFallbackDocument(doc []byte) Option {
	return func(c *Client) { c.fallback = doc }
}

// WithClock overrides the time source used for the homepage cache buster.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New builds a Client. The homepage fallback comes from cfg.FallbackFile or
// the embedded document.
func New(cfg config.ContentConfig, normalizer *placeholder.Normalizer, opts ...Option) (*Client, error) {
	if normalizer == nil {
		return nil, errors.New("content: normalizer is required")
	}

	c := &Client{
		apiURL:        strings.TrimRight(cfg.APIURL, "/"),
		homepageURL:   cfg.HomepageURL,
		homepageToken: cfg.HomepageToken,
		servicePath:   cfg.ServicePath,
		normalizer:    normalizer,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = utils.NewHTTPClient(utils.DefaultHTTPTimeout)
	}
	if c.cache == nil {
		c.cache = NewMemoryCache()
	}
	if c.logger == nil {
		c.logger = logging.GetGlobalLogger()
	}
	if c.fallback == nil {
		doc, err := LoadFallback(cfg.FallbackFile)
		if err != nil {
			return nil, err
		}
		c.fallback = doc
	} else if !json.Valid(c.fallback) {
		return nil, errors.New("content: fallback document is not valid JSON")
	}

	return c, nil
}

// getJSON issues a GET against the content API and decodes the body into out.
// Successful responses are cached under the request URL for ttl.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, query url.Values, ttl time.Duration, out any) error {
	target := c.apiURL + "/" + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	if body, ok := c.cache.Get(ctx, target); ok {
		if err := json.Unmarshal(body, out); err == nil {
			return nil
		}
	}

	body, err := c.get(ctx, endpoint, target, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", endpoint, err)
	}

	c.cache.Set(ctx, target, body, ttl)
	return nil
}

func (c *Client) get(ctx context.Context, endpoint, target string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", endpoint, redact(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", endpoint, err)
	}
	return body, nil
}

// degrade records a failed read.
func (c *Client) degrade(endpoint string, err error) {
	c.logger.Warn("content %s request failed: %v", endpoint, err)
	c.metrics.ContentFetchFailed(endpoint)
}

// redact strips the request URL (which may carry the homepage token) from
// transport errors.
func redact(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s: %w", uerr.Op, uerr.Err)
	}
	return err
}

// clampCount applies def to non-positive counts and caps at the API page limit.
func clampCount(count, def int) int {
	if count <= 0 {
		count = def
	}
	if count > maxPerPage {
		count = maxPerPage
	}
	return count
}

// normalizeSlug decodes an already percent-encoded slug so the query encoder
// encodes it exactly once. Malformed escapes are kept as-is.
func normalizeSlug(slug string) string {
	slug = strings.TrimSpace(slug)
	if decoded, err := url.PathUnescape(slug); err == nil {
		return decoded
	}
	return slug
}
