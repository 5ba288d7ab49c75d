package content

import (
	"encoding/json"
)

// Document is an arbitrary decoded JSON value (map[string]any, []any or a scalar).
type Document = any

// Rendered is the WordPress wrapper around HTML fields.
type Rendered struct {
	Rendered string `json:"rendered"`
}

// Item is a post or page. Fields the site reads are typed; the full remote
// document is kept in Raw and is what Item marshals back to.
type Item struct {
	ID            int       `json:"id"`
	Date          string    `json:"date"`
	Modified      string    `json:"modified"`
	Slug          string    `json:"slug"`
	Status        string    `json:"status"`
	Type          string    `json:"type"`
	Link          string    `json:"link"`
	Title         Rendered  `json:"title"`
	Content       Rendered  `json:"content"`
	Excerpt       Rendered  `json:"excerpt"`
	Author        int       `json:"author"`
	FeaturedMedia int       `json:"featured_media"`
	Parent        int       `json:"parent"`
	Categories    []int     `json:"categories"`
	Tags          []int     `json:"tags"`
	Embedded      *Embedded `json:"_embedded,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// Embedded holds relations inlined by the _embed query flag. Every relation
// may be absent; use the Item accessors rather than indexing directly.
type Embedded struct {
	Author        []Author `json:"author,omitempty"`
	FeaturedMedia []Media  `json:"wp:featuredmedia,omitempty"`
	Terms         [][]Term `json:"wp:term,omitempty"`
}

type Author struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Link string `json:"link"`
}

type Media struct {
	ID        int    `json:"id"`
	SourceURL string `json:"source_url"`
	AltText   string `json:"alt_text"`
	MediaType string `json:"media_type"`
}

type Term struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Taxonomy string `json:"taxonomy"`
	Link     string `json:"link"`
}

// Category is a post category.
type Category struct {
	ID          int    `json:"id"`
	Count       int    `json:"count"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Parent      int    `json:"parent"`

	Raw json.RawMessage `json:"-"`
}

func (i *Item) UnmarshalJSON(data []byte) error {
	type plain Item
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*i = Item(p)
	i.Raw = append(json.RawMessage(nil), data...)
	return nil
}

func (i Item) MarshalJSON() ([]byte, error) {
	if len(i.Raw) > 0 {
		return i.Raw, nil
	}
	type plain Item
	return json.Marshal(plain(i))
}

func (c *Category) UnmarshalJSON(data []byte) error {
	type plain Category
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Category(p)
	c.Raw = append(json.RawMessage(nil), data...)
	return nil
}

func (c Category) MarshalJSON() ([]byte, error) {
	if len(c.Raw) > 0 {
		return c.Raw, nil
	}
	type plain Category
	return json.Marshal(plain(c))
}

// FeaturedImage returns the embedded featured media URL.
func (i *Item) FeaturedImage() (string, bool) {
	if i == nil || i.Embedded == nil || len(i.Embedded.FeaturedMedia) == 0 {
		return "", false
	}
	url := i.Embedded.FeaturedMedia[0].SourceURL
	return url, url != ""
}

// AuthorName returns the embedded author's display name.
func (i *Item) AuthorName() (string, bool) {
	if i == nil || i.Embedded == nil || len(i.Embedded.Author) == 0 {
		return "", false
	}
	name := i.Embedded.Author[0].Name
	return name, name != ""
}

// PrimaryCategory returns the name of the first embedded term of the first taxonomy.
func (i *Item) PrimaryCategory() (string, bool) {
	if i == nil || i.Embedded == nil || len(i.Embedded.Terms) == 0 || len(i.Embedded.Terms[0]) == 0 {
		return "", false
	}
	name := i.Embedded.Terms[0][0].Name
	return name, name != ""
}

func slugsOf(items []Item) []string {
	slugs := make([]string, 0, len(items))
	for _, item := range items {
		slugs = append(slugs, item.Slug)
	}
	return slugs
}
