// Package site derives navigation and footer data from the homepage
// document, falling back to configured site identity.
package site

import (
	"context"

	"github.com/webbplats/site/internal/config"
	"github.com/webbplats/site/internal/content"
)

// DefaultCTALabel is the last-resort call-to-action label.
const DefaultCTALabel = "Kontakta oss"

type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type Navigation struct {
	BrandName string `json:"brandName"`
	MenuItems []Link `json:"menuItems"`
	CTA       Link   `json:"cta"`
}

type Footer struct {
	Email   string          `json:"email"`
	Address *config.Address `json:"address,omitempty"`
}

// BuildNavigation prefers values from the homepage document and falls back
// to the site configuration.
func BuildNavigation(cfg config.SiteConfig, homepage content.Document) Navigation {
	nav := Navigation{
		BrandName: firstNonEmpty(lookupString(homepage, "footer", "company", "name"), cfg.Name),
		MenuItems: menuItems(lookup(homepage, "header", "navigation")),
	}

	if len(nav.MenuItems) == 0 {
		nav.MenuItems = make([]Link, 0, len(cfg.NavItems))
		for _, item := range cfg.NavItems {
			nav.MenuItems = append(nav.MenuItems, Link{Label: item.Label, Href: item.Href})
		}
	}

	var firstLabel string
	if len(cfg.NavItems) > 0 {
		firstLabel = cfg.NavItems[0].Label
	}
	nav.CTA = Link{
		Label: firstNonEmpty(lookupString(homepage, "header", "cta", "label"), cfg.NavCTALabel, firstLabel, DefaultCTALabel),
		Href:  firstNonEmpty(lookupString(homepage, "header", "cta", "href"), cfg.NavCTAHref),
	}
	return nav
}

// BuildFooter returns the footer contact details.
func BuildFooter(cfg config.SiteConfig, homepage content.Document) Footer {
	return Footer{
		Email:   firstNonEmpty(lookupString(homepage, "footer", "company", "contact", "email"), cfg.ContactEmail),
		Address: cfg.ContactAddress,
	}
}

// PageFetcher looks pages up by slug.
type PageFetcher interface {
	FetchPageBySlug(ctx context.Context, slug string) *content.Item
}

// FirstPage returns the first page found among slugs, in order.
func FirstPage(ctx context.Context, pages PageFetcher, slugs ...string) *content.Item {
	for _, slug := range slugs {
		if page := pages.FetchPageBySlug(ctx, slug); page != nil {
			return page
		}
	}
	return nil
}

func menuItems(v any) []Link {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	items := make([]Link, 0, len(list))
	for _, entry := range list {
		label, _ := lookup(entry, "label").(string)
		items = append(items, Link{
			Label: label,
			Href:  firstNonEmpty(lookupString(entry, "href"), lookupString(entry, "url"), "/"),
		})
	}
	return items
}

func lookup(doc any, path ...string) any {
	cur := doc
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = obj[key]
	}
	return cur
}

func lookupString(doc any, path ...string) string {
	s, _ := lookup(doc, path...).(string)
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
