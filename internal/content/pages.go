package content

import (
	"context"
	"strconv"
	"strings"
)

// FetchPageBySlug returns the page with the given slug, or nil.
func (c *Client) FetchPageBySlug(ctx context.Context, slug string) *Item {
	slug = normalizeSlug(slug)
	if slug == "" {
		return nil
	}

	q := embedQuery()
	q.Set("slug", slug)

	var pages []Item
	if err := c.getJSON(ctx, "page", "pages", q, pageTTL, &pages); err != nil {
		c.degrade("page", err)
		return nil
	}
	if len(pages) == 0 {
		return nil
	}
	return &pages[0]
}

// FetchServicePageSlugs returns slugs of pages whose link contains
// pathFilter. An empty filter uses the configured service path.
func (c *Client) FetchServicePageSlugs(ctx context.Context, pathFilter string) []string {
	if pathFilter == "" {
		pathFilter = c.servicePath
	}

	q := embedQuery()
	q.Set("per_page", strconv.Itoa(maxPerPage))

	var pages []Item
	if err := c.getJSON(ctx, "pages", "pages", q, pageListTTL, &pages); err != nil {
		c.degrade("pages", err)
		return []string{}
	}

	slugs := []string{}
	for _, page := range pages {
		if strings.Contains(page.Link, pathFilter) {
			slugs = append(slugs, page.Slug)
		}
	}
	return slugs
}
