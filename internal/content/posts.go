package content

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

const (
	// DefaultPostCount is used by FetchPosts when count is not positive.
	DefaultPostCount = 3

	// maxPerPage is the largest per_page the WordPress API accepts.
	maxPerPage = 100

	// Bounds of the slug fallback scan.
	scanPageSize = 100
	scanMaxPages = 10
)

func embedQuery() url.Values {
	return url.Values{"_embed": {"1"}}
}

// FetchPosts returns the most recent posts with embedded relations.
func (c *Client) FetchPosts(ctx context.Context, count int) []Item {
	q := embedQuery()
	q.Set("per_page", strconv.Itoa(clampCount(count, DefaultPostCount)))

	var posts []Item
	if err := c.getJSON(ctx, "posts", "posts", q, postsTTL, &posts); err != nil {
		c.degrade("posts", err)
		return []Item{}
	}
	if posts == nil {
		posts = []Item{}
	}
	return posts
}

// FetchPostBySlug looks a post up by slug. When the slug query comes back
// empty the full listing is scanned page by page, up to scanMaxPages pages,
// stopping at the first short page or a 400 response.
func (c *Client) FetchPostBySlug(ctx context.Context, slug string) *Item {
	slug = normalizeSlug(slug)
	if slug == "" {
		return nil
	}

	q := embedQuery()
	q.Set("slug", slug)

	var posts []Item
	if err := c.getJSON(ctx, "post", "posts", q, postsTTL, &posts); err != nil {
		c.degrade("post", err)
		return nil
	}
	if len(posts) > 0 {
		return &posts[0]
	}

	return c.scanPostsForSlug(ctx, slug)
}

func (c *Client) scanPostsForSlug(ctx context.Context, slug string) *Item {
	for page := 1; page <= scanMaxPages; page++ {
		q := embedQuery()
		q.Set("per_page", strconv.Itoa(scanPageSize))
		q.Set("page", strconv.Itoa(page))

		var batch []Item
		if err := c.getJSON(ctx, "post_scan", "posts", q, postsTTL, &batch); err != nil {
			// WordPress answers 400 for a page past the last one.
			if IsStatus(err, http.StatusBadRequest) {
				return nil
			}
			c.degrade("post_scan", err)
			return nil
		}

		for i := range batch {
			if batch[i].Slug == slug {
				return &batch[i]
			}
		}

		if len(batch) < scanPageSize {
			return nil
		}
	}
	return nil
}

// FetchAllPostSlugs returns the slugs of the latest hundred posts.
func (c *Client) FetchAllPostSlugs(ctx context.Context) []string {
	q := url.Values{"per_page": {strconv.Itoa(maxPerPage)}}

	var posts []Item
	if err := c.getJSON(ctx, "post_slugs", "posts", q, postSlugsTTL, &posts); err != nil {
		c.degrade("post_slugs", err)
		return []string{}
	}
	return slugsOf(posts)
}
