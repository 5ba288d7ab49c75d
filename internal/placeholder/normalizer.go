// Package placeholder substitutes site-specific tokens into content documents.
package placeholder

import (
	"strings"
)

// Tokens recognised inside content strings.
const (
	TokenSiteBaseURL  = "${SITE_BASE_URL}"
	TokenSiteName     = "${SITE_NAME}"
	TokenCompanyEmail = "${COMPANY_EMAIL}"
)

// AssetPrefix marks a relative upload path that must be made absolute.
const AssetPrefix = "/wp-content/"

// Values are the runtime replacements bound at process start.
type Values struct {
	SiteBaseURL  string
	SiteName     string
	CompanyEmail string
}

// Normalizer rewrites every string leaf of a decoded JSON document.
// It is safe for concurrent use.
type Normalizer struct {
	replacer    *strings.Replacer
	baseURL     string
	assetPrefix string
}

// New binds the token replacements.
func New(values Values) *Normalizer {
	return &Normalizer{
		replacer: strings.NewReplacer(
			TokenSiteBaseURL, values.SiteBaseURL,
			TokenSiteName, values.SiteName,
			TokenCompanyEmail, values.CompanyEmail,
		),
		baseURL:     values.SiteBaseURL,
		assetPrefix: AssetPrefix,
	}
}

// Normalize returns a deep copy of doc with tokens substituted and relative
// asset paths made absolute. doc is expected to be the output of
// encoding/json decoding into an interface value; any other type is returned
// unchanged. The input is never mutated.
func (n *Normalizer) Normalize(doc any) any {
	switch v := doc.(type) {
	case string:
		return n.String(v)
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = n.Normalize(elem)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, elem := range v {
			out[key] = n.Normalize(elem)
		}
		return out
	default:
		return doc
	}
}

// String applies the substitution to a single value.
func (n *Normalizer) String(s string) string {
	s = n.replacer.Replace(s)
	if strings.HasPrefix(s, n.assetPrefix) {
		s = n.baseURL + s
	}
	return s
}
