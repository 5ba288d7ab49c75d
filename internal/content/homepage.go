package content

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
)

//go:embed fallback/homepage-data.json
var embeddedFallback []byte

var errHomepageNotConfigured = errors.New("homepage: HOMEPAGE_API_URL is not set")

// LoadFallback reads the homepage fallback document from path, or returns
// the embedded document when path is empty.
func LoadFallback(path string) ([]byte, error) {
	if path == "" {
		return embeddedFallback, nil
	}
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read fallback document: %w", err)
	}
	if !json.Valid(doc) {
		return nil, fmt.Errorf("content: fallback document %s is not valid JSON", path)
	}
	return doc, nil
}

// FetchHomepageConfig returns the normalized homepage document. It is never
// cached; any failure yields the normalized fallback document.
func (c *Client) FetchHomepageConfig(ctx context.Context) Document {
	doc, err := c.fetchHomepage(ctx)
	if err != nil {
		c.degrade("homepage", err)
		c.metrics.HomepageFellBack()
		doc = c.fallbackDocument()
	}
	return c.normalizer.Normalize(doc)
}

func (c *Client) fetchHomepage(ctx context.Context) (Document, error) {
	if c.homepageURL == "" {
		return nil, errHomepageNotConfigured
	}

	u, err := url.Parse(c.homepageURL)
	if err != nil {
		return nil, fmt.Errorf("homepage: parse url: %w", err)
	}
	q := u.Query()
	q.Set("token", c.homepageToken)
	q.Set("v", strconv.FormatInt(c.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	header := http.Header{}
	header.Set("Cache-Control", "no-store")

	body, err := c.get(ctx, "homepage", u.String(), header)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("homepage: decode response: %w", err)
	}
	return doc, nil
}

// fallbackDocument decodes a fresh copy on every call.
func (c *Client) fallbackDocument() Document {
	var doc Document
	if err := json.Unmarshal(c.fallback, &doc); err != nil {
		c.logger.Error("content fallback document is invalid: %v", err)
		return map[string]any{}
	}
	return doc
}
