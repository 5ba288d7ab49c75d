package content

import (
	"github.com/webbplats/site/internal/content"
)

// CategoryPostsResponse is a category together with its posts
type CategoryPostsResponse struct {
	Category *content.Category `json:"category"`
	Posts    []PostSummary     `json:"posts"`
}

// SlugsResponse lists slugs of one content kind
type SlugsResponse struct {
	Kind  string   `json:"kind"`
	Slugs []string `json:"slugs"`
}

// PostSummary is the listing view of a post
type PostSummary struct {
	ID            int    `json:"id"`
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	Excerpt       string `json:"excerpt"`
	Date          string `json:"date"`
	FeaturedImage string `json:"featuredImage,omitempty"`
	Author        string `json:"author,omitempty"`
	Category      string `json:"category,omitempty"`
	ReadingTime   int    `json:"readingTime,omitempty"`
}
