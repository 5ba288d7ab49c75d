package content

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const embeddedPost = `{
	"id": 12,
	"slug": "hej",
	"title": {"rendered": "Hej &amp; välkommen"},
	"content": {"rendered": "<p>Ett <strong>två</strong></p><p>tre</p>"},
	"custom_field": {"kept": true},
	"_embedded": {
		"author": [{"id": 1, "name": "Anna"}],
		"wp:featuredmedia": [{"id": 3, "source_url": "https://example.se/wp-content/uploads/x.jpg"}],
		"wp:term": [[{"id": 4, "name": "Nyheter", "taxonomy": "category"}], []]
	}
}`

func TestItemEmbeddedAccessors(t *testing.T) {
	var item Item
	require.NoError(t, json.Unmarshal([]byte(embeddedPost), &item))

	image, ok := item.FeaturedImage()
	assert.True(t, ok)
	assert.Equal(t, "https://example.se/wp-content/uploads/x.jpg", image)

	author, ok := item.AuthorName()
	assert.True(t, ok)
	assert.Equal(t, "Anna", author)

	category, ok := item.PrimaryCategory()
	assert.True(t, ok)
	assert.Equal(t, "Nyheter", category)
}

func TestItemAccessorsWithoutEmbed(t *testing.T) {
	var item Item
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "_embedded": {"wp:term": [[]]}}`), &item))

	_, ok := item.FeaturedImage()
	assert.False(t, ok)
	_, ok = item.AuthorName()
	assert.False(t, ok)
	_, ok = item.PrimaryCategory()
	assert.False(t, ok)

	var nilItem *Item
	_, ok = nilItem.AuthorName()
	assert.False(t, ok)
}

func TestItemMarshalKeepsRemoteFields(t *testing.T) {
	var item Item
	require.NoError(t, json.Unmarshal([]byte(embeddedPost), &item))

	out, err := json.Marshal(item)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, map[string]any{"kept": true}, doc["custom_field"])

	built, err := json.Marshal(Item{ID: 2, Slug: "ny"})
	require.NoError(t, err)
	assert.Contains(t, string(built), `"slug":"ny"`)
}

func TestPlainTextAndReadingTime(t *testing.T) {
	assert.Equal(t, "Hej & välkommen", PlainText("Hej &amp; välkommen"))
	assert.Equal(t, "Ett två tre", PlainText("<p>Ett <strong>två</strong></p><p>tre</p>"))
	assert.Equal(t, "", PlainText(""))

	tests := []struct {
		name  string
		words int
		want  int
		ok    bool
	}{
		{"empty", 0, 0, false},
		{"short", 5, 1, true},
		{"rounds down", 299, 1, true},
		{"rounds up", 300, 2, true},
		{"long", 1000, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &Item{Content: Rendered{Rendered: "<p>" + strings.Repeat("ord ", tt.words) + "</p>"}}
			assert.Equal(t, tt.words, item.WordCount())
			got, ok := item.ReadingTime()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	now := time.Now()
	cache := NewMemoryCache()
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	cache.Set(ctx, "k", []byte("v"), time.Minute)
	cache.Set(ctx, "skip", []byte("v"), 0)

	got, ok := cache.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "v", string(got))
	_, ok = cache.Get(ctx, "skip")
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = cache.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cache := NewRedisCache(rdb, "")
	ctx := context.Background()

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	cache.Set(ctx, "k", []byte(`[1]`), time.Minute)
	got, ok := cache.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, `[1]`, string(got))
	assert.True(t, mr.Exists(DefaultRedisPrefix+"k"))

	mr.FastForward(2 * time.Minute)
	_, ok = cache.Get(ctx, "k")
	assert.False(t, ok)
}

func TestClientUsesSharedCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	first, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, makePosts(1, 1))
	}, WithCache(NewRedisCache(rdb, "")))
	require.Len(t, first.FetchPosts(context.Background(), 1), 1)

	// a second client pointing at the same redis is served without a request
	second := *first
	second.http = nil
	require.Len(t, second.FetchPosts(context.Background(), 1), 1)
	assert.Equal(t, 1, rec.count(apiPrefix+"/posts"))
}
