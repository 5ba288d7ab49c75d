package site

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webbplats/site/internal/config"
	"github.com/webbplats/site/internal/content"
)

func testSite() config.SiteConfig {
	return config.SiteConfig{
		Name:         "Webbplats",
		NavCTALabel:  "Kontakta oss",
		NavCTAHref:   "/kontakt/",
		ContactEmail: "hej@example.se",
		NavItems:     config.DefaultNavItems(),
	}
}

func decode(t *testing.T, raw string) content.Document {
	t.Helper()
	var doc content.Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestBuildNavigationFromHomepage(t *testing.T) {
	doc := decode(t, `{
		"footer": {"company": {"name": "Byrån AB"}},
		"header": {
			"navigation": [
				{"label": "Start", "href": "/start/"},
				{"label": "Blogg", "url": "/blogg/"},
				{"label": "Tom"}
			],
			"cta": {"label": "Boka möte", "href": "/boka/"}
		}
	}`)

	nav := BuildNavigation(testSite(), doc)
	assert.Equal(t, "Byrån AB", nav.BrandName)
	assert.Equal(t, []Link{
		{Label: "Start", Href: "/start/"},
		{Label: "Blogg", Href: "/blogg/"},
		{Label: "Tom", Href: "/"},
	}, nav.MenuItems)
	assert.Equal(t, Link{Label: "Boka möte", Href: "/boka/"}, nav.CTA)
}

func TestBuildNavigationFallsBackToConfig(t *testing.T) {
	for _, doc := range []content.Document{nil, "text", decode(t, `{"header": {"navigation": []}}`)} {
		nav := BuildNavigation(testSite(), doc)
		assert.Equal(t, "Webbplats", nav.BrandName)
		require.Len(t, nav.MenuItems, 5)
		assert.Equal(t, Link{Label: "Hem", Href: "/"}, nav.MenuItems[0])
		assert.Equal(t, Link{Label: "Kontakta oss", Href: "/kontakt/"}, nav.CTA)
	}
}

func TestBuildNavigationCTALabelFallbacks(t *testing.T) {
	cfg := testSite()
	cfg.NavCTALabel = ""
	assert.Equal(t, "Hem", BuildNavigation(cfg, nil).CTA.Label)

	cfg.NavItems = nil
	assert.Equal(t, DefaultCTALabel, BuildNavigation(cfg, nil).CTA.Label)
}

func TestBuildFooter(t *testing.T) {
	cfg := testSite()
	cfg.ContactAddress = &config.Address{City: "Umeå"}

	footer := BuildFooter(cfg, decode(t, `{"footer": {"company": {"contact": {"email": "info@byran.se"}}}}`))
	assert.Equal(t, "info@byran.se", footer.Email)
	assert.Equal(t, "Umeå", footer.Address.City)

	assert.Equal(t, "hej@example.se", BuildFooter(cfg, nil).Email)
}

type stubPages map[string]*content.Item

func (s stubPages) FetchPageBySlug(_ context.Context, slug string) *content.Item {
	return s[slug]
}

func TestFirstPage(t *testing.T) {
	pages := stubPages{
		"digitala-tjanster":   {ID: 2, Slug: "digitala-tjanster"},
		"digitala-tjanster-2": {ID: 3, Slug: "digitala-tjanster-2"},
	}

	page := FirstPage(context.Background(), pages, "tjanster", "digitala-tjanster", "digitala-tjanster-2")
	require.NotNil(t, page)
	assert.Equal(t, 2, page.ID)

	assert.Nil(t, FirstPage(context.Background(), pages, "saknas"))
	assert.Nil(t, FirstPage(context.Background(), pages))
}
