package site

import "strings"

// BuildContext carries build-wide values into every page.
type BuildContext struct {
	SiteName     string
	Tagline      string
	Description  string
	BaseURL      string
	Year         int
	YearToken    string
	Updated      string
	ContactEmail string
	Copyright    string
	DebounceMs   int
	RelatedLimit int
	Minify       bool

	// ExtraStyles are site-root stylesheets linked after style.css.
	ExtraStyles []string
}

// Canonical returns the absolute URL of a directory path such as
// "deal/acme/". An empty rel yields the site root.
func (bc BuildContext) Canonical(rel string) string {
	return strings.TrimRight(bc.BaseURL, "/") + "/" + rel
}
