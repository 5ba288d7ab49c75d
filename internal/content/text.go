package content

import (
	"html"
	"math"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// wordsPerMinute is the reading speed used for ReadingTime.
const wordsPerMinute = 200

var textPolicy = bluemonday.StrictPolicy().AddSpaceWhenStrippingTag(true)

// PlainText strips markup from rendered HTML and collapses whitespace.
func PlainText(rendered string) string {
	if rendered == "" {
		return ""
	}
	text := html.UnescapeString(textPolicy.Sanitize(rendered))
	return strings.Join(strings.Fields(text), " ")
}

// WordCount counts whitespace-separated words of the item's rendered content.
func (i *Item) WordCount() int {
	if i == nil {
		return 0
	}
	return len(strings.Fields(PlainText(i.Content.Rendered)))
}

// ReadingTime estimates minutes to read the content, never less than one.
// ok is false when the content has no words.
func (i *Item) ReadingTime() (minutes int, ok bool) {
	words := i.WordCount()
	if words == 0 {
		return 0, false
	}
	minutes = int(math.Round(float64(words) / wordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return minutes, true
}
