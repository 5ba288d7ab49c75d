package placeholder

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testValues = Values{
	SiteBaseURL:  "https://example.se",
	SiteName:     "Exempel AB",
	CompanyEmail: "hej@example.se",
}

func decode(t *testing.T, raw string) any {
	t.Helper()
	var doc any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestString(t *testing.T) {
	n := New(testValues)

	tests := []struct {
		in   string
		want string
	}{
		{"Välkommen till ${SITE_NAME}", "Välkommen till Exempel AB"},
		{"${SITE_NAME} – ${SITE_NAME}", "Exempel AB – Exempel AB"},
		{"mailto:${COMPANY_EMAIL}", "mailto:hej@example.se"},
		{"${SITE_BASE_URL}/kontakt/", "https://example.se/kontakt/"},
		{"/wp-content/uploads/hero.jpg", "https://example.se/wp-content/uploads/hero.jpg"},
		{"/wp-content-not-really", "/wp-content-not-really"},
		{"see /wp-content/uploads/a.png", "see /wp-content/uploads/a.png"},
		{"${UNKNOWN}", "${UNKNOWN}"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, n.String(tt.in))
		})
	}
}

func TestNormalizeNestedDocument(t *testing.T) {
	n := New(testValues)
	doc := decode(t, `{
		"hero": {"title": "${SITE_NAME}", "image": "/wp-content/uploads/hero.jpg"},
		"sections": [
			{"heading": "Mejla ${COMPANY_EMAIL}", "order": 1, "visible": true},
			["${SITE_NAME}", null, 2.5]
		],
		"count": 3,
		"empty": null
	}`)

	got := n.Normalize(doc).(map[string]any)

	hero := got["hero"].(map[string]any)
	assert.Equal(t, "Exempel AB", hero["title"])
	assert.Equal(t, "https://example.se/wp-content/uploads/hero.jpg", hero["image"])

	sections := got["sections"].([]any)
	require.Len(t, sections, 2)
	first := sections[0].(map[string]any)
	assert.Equal(t, "Mejla hej@example.se", first["heading"])
	assert.Equal(t, float64(1), first["order"])
	assert.Equal(t, true, first["visible"])
	assert.Equal(t, []any{"Exempel AB", nil, 2.5}, sections[1])

	assert.Equal(t, float64(3), got["count"])
	assert.Contains(t, got, "empty")
	assert.Nil(t, got["empty"])
	assert.Len(t, got, 4)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	n := New(testValues)
	doc := decode(t, `{"a": ["${SITE_NAME}"], "b": {"c": "/wp-content/x.png"}}`)
	before, err := json.Marshal(doc)
	require.NoError(t, err)

	_ = n.Normalize(doc)

	after, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	n := New(testValues)
	doc := decode(t, `{
		"a": "${SITE_NAME} ${COMPANY_EMAIL} ${SITE_BASE_URL}",
		"b": ["/wp-content/uploads/1.png", {"c": "${SITE_BASE_URL}/wp-content/2.png"}],
		"d": 42
	}`)

	once := n.Normalize(doc)
	twice := n.Normalize(once)
	assert.Equal(t, once, twice)
}

func TestNormalizeEmptyBaseURL(t *testing.T) {
	n := New(Values{SiteName: "Webbplats"})

	assert.Equal(t, "/wp-content/a.png", n.String("/wp-content/a.png"))
	assert.Equal(t, "/wp-content/a.png", n.String("${SITE_BASE_URL}/wp-content/a.png"))
}

func TestNormalizeScalarsAndForeignTypes(t *testing.T) {
	n := New(testValues)

	assert.Nil(t, n.Normalize(nil))
	assert.Equal(t, float64(7), n.Normalize(float64(7)))
	assert.Equal(t, false, n.Normalize(false))

	typed := map[string]string{"x": "${SITE_NAME}"}
	assert.Equal(t, typed, n.Normalize(typed))
}

func TestNormalizeDeepNesting(t *testing.T) {
	n := New(testValues)
	raw := strings.Repeat(`{"k":[`, 200) + `"${SITE_NAME}"` + strings.Repeat(`]}`, 200)
	doc := decode(t, raw)

	got := n.Normalize(doc)
	for i := 0; i < 200; i++ {
		got = got.(map[string]any)["k"].([]any)[0]
	}
	assert.Equal(t, "Exempel AB", got)
}
