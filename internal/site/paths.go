package site

import "path"

// Output file names at the site root.
const (
	IndexFile          = "index.html"
	DealDir            = "deal"
	SitemapFile        = "sitemap.xml"
	RobotsFile         = "robots.txt"
	StyleFile          = "style.css"
	SearchScriptFile   = "search.js"
	CategoryScriptFile = "category.js"
	CopyScriptFile     = "copy.js"
	HighlightFile      = "highlight.css"
)

// Relative prefixes from a page back to the site root.
const (
	homePrefix     = "./"
	categoryPrefix = "../"
	dealPrefix     = "../../"
)

// Page is one generated file. Path is slash-separated and relative to the
// output directory.
type Page struct {
	Path    string
	Content []byte
}

// HomePath is the output path of the home page.
func HomePath() string { return IndexFile }

// DealPath is the output path of a deal page.
func DealPath(slug string) string { return path.Join(DealDir, slug, IndexFile) }

// CategoryPath is the output path of a category page.
func CategoryPath(slug string) string { return path.Join(slug, IndexFile) }

func dealURL(prefix, slug string) string {
	return prefix + DealPath(slug)
}

func categoryURL(prefix, slug string) string {
	return prefix + CategoryPath(slug)
}
