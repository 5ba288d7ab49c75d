package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webbplats/site/internal/content"
)

func TestItemToPostSummary(t *testing.T) {
	var item content.Item
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 5,
		"slug": "nytt",
		"date": "2025-02-01T10:00:00",
		"title": {"rendered": "Nytt &#8211; nu"},
		"excerpt": {"rendered": "<p>Kort text</p>\n"},
		"content": {"rendered": "<p>ett två tre</p>"},
		"_embedded": {"author": [{"name": "Anna"}]}
	}`), &item))

	summary := ItemToPostSummary(&item)
	assert.Equal(t, 5, summary.ID)
	assert.Equal(t, "Nytt – nu", summary.Title)
	assert.Equal(t, "Kort text", summary.Excerpt)
	assert.Equal(t, "Anna", summary.Author)
	assert.Empty(t, summary.FeaturedImage)
	assert.Empty(t, summary.Category)
	assert.Equal(t, 1, summary.ReadingTime)
}

func TestItemsToPostSummaries(t *testing.T) {
	summaries := ItemsToPostSummaries([]content.Item{{ID: 1}, {ID: 2}})
	require.Len(t, summaries, 2)
	assert.Equal(t, 2, summaries[1].ID)
	assert.Empty(t, ItemsToPostSummaries(nil))
}
