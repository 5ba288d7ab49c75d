package content

import (
	"context"
	"net/url"
	"strconv"
)

// DefaultCategoryPostCount is used by FetchPostsByCategory when count is not positive.
const DefaultCategoryPostCount = 100

func (c *Client) FetchCategories(ctx context.Context) []Category {
	q := url.Values{"per_page": {strconv.Itoa(maxPerPage)}}

	var categories []Category
	if err := c.getJSON(ctx, "categories", "categories", q, categoriesTTL, &categories); err != nil {
		c.degrade("categories", err)
		return []Category{}
	}
	if categories == nil {
		categories = []Category{}
	}
	return categories
}

// FetchCategoryBySlug returns the category with the given slug, or nil.
func (c *Client) FetchCategoryBySlug(ctx context.Context, slug string) *Category {
	slug = normalizeSlug(slug)
	if slug == "" {
		return nil
	}

	var categories []Category
	if err := c.getJSON(ctx, "category", "categories", url.Values{"slug": {slug}}, categoryTTL, &categories); err != nil {
		c.degrade("category", err)
		return nil
	}
	if len(categories) == 0 {
		return nil
	}
	return &categories[0]
}

// FetchPostsByCategory returns posts filed under category id.
func (c *Client) FetchPostsByCategory(ctx context.Context, id, count int) []Item {
	q := embedQuery()
	q.Set("categories", strconv.Itoa(id))
	q.Set("per_page", strconv.Itoa(clampCount(count, DefaultCategoryPostCount)))

	var posts []Item
	if err := c.getJSON(ctx, "posts_by_category", "posts", q, postsTTL, &posts); err != nil {
		c.degrade("posts_by_category", err)
		return []Item{}
	}
	if posts == nil {
		posts = []Item{}
	}
	return posts
}

func (c *Client) FetchAllCategorySlugs(ctx context.Context) []string {
	categories := c.FetchCategories(ctx)
	slugs := make([]string, 0, len(categories))
	for _, category := range categories {
		slugs = append(slugs, category.Slug)
	}
	return slugs
}
