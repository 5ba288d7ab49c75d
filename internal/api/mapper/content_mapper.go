package mapper

import (
	contentdto "github.com/webbplats/site/internal/api/dto/v1/content"
	"github.com/webbplats/site/internal/content"
)

// ItemToPostSummary maps a content Item to a PostSummary DTO
func ItemToPostSummary(item *content.Item) contentdto.PostSummary {
	summary := contentdto.PostSummary{
		ID:      item.ID,
		Slug:    item.Slug,
		Title:   content.PlainText(item.Title.Rendered),
		Excerpt: content.PlainText(item.Excerpt.Rendered),
		Date:    item.Date,
	}
	summary.FeaturedImage, _ = item.FeaturedImage()
	summary.Author, _ = item.AuthorName()
	summary.Category, _ = item.PrimaryCategory()
	summary.ReadingTime, _ = item.ReadingTime()
	return summary
}

// ItemsToPostSummaries maps a slice of content Items to a slice of PostSummary DTOs
func ItemsToPostSummaries(items []content.Item) []contentdto.PostSummary {
	result := make([]contentdto.PostSummary, len(items))
	for i := range items {
		result[i] = ItemToPostSummary(&items[i])
	}
	return result
}
