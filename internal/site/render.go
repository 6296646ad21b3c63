package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alnah/go-dealsite/internal/assets"
	"github.com/alnah/go-dealsite/internal/catalog"
	"github.com/alnah/go-dealsite/internal/dateutil"
	"github.com/alnah/go-dealsite/internal/search"
)

// Sentinel errors for page rendering.
var (
	ErrTemplateParse = errors.New("template parsing failed")
	ErrPageRender    = errors.New("page rendering failed")
)

// Crumb is one breadcrumb link. The last crumb renders as plain text.
type Crumb struct {
	Label string
	URL   string
}

// cardData is the argument of the "card" partial.
type cardData struct {
	Prefix string
	Deal   *catalog.Deal
}

// pageData is the value every page template executes against. Fields a page
// does not use stay zero.
type pageData struct {
	Site        BuildContext
	Title       string
	Description string
	Canonical   string
	Prefix      string
	SitemapLink bool
	Styles      []string
	Scripts     []string
	Breadcrumbs []Crumb
	SearchIndex []search.Entry

	Deals      []*catalog.Deal
	Categories []*catalog.Category

	Deal    *catalog.Deal
	Heading string
	Offer   *offer
	Related []*catalog.Deal

	Category *catalog.Category
}

// offer is the schema.org structured data embedded in deal pages.
type offer struct {
	Context            string       `json:"@context"`
	Type               string       `json:"@type"`
	Name               string       `json:"name"`
	Description        string       `json:"description"`
	URL                string       `json:"url"`
	Seller             organization `json:"seller"`
	PriceSpecification priceSpec    `json:"priceSpecification"`
}

type organization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type priceSpec struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
}

// Renderer turns catalog values into HTML pages.
type Renderer struct {
	bc       BuildContext
	home     *template.Template
	deal     *template.Template
	category *template.Template
}

// NewRenderer parses the template set. The base and card templates are
// parsed once and cloned under each page template.
func NewRenderer(set *assets.TemplateSet, bc BuildContext) (*Renderer, error) {
	base, err := template.New(assets.TemplateBase).Funcs(funcMap()).Parse(set.Base)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, assets.TemplateBase, err)
	}
	if _, err := base.New(assets.TemplateCard).Parse(set.Card); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, assets.TemplateCard, err)
	}

	r := &Renderer{bc: bc}
	pages := []struct {
		name string
		src  string
		dst  **template.Template
	}{
		{assets.TemplateHome, set.Home, &r.home},
		{assets.TemplateDeal, set.Deal, &r.deal},
		{assets.TemplateCategory, set.Category, &r.category},
	}
	for _, p := range pages {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, p.name, err)
		}
		if _, err := clone.New(p.name).Parse(p.src); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, p.name, err)
		}
		if clone.Lookup("content") == nil {
			return nil, fmt.Errorf("%w: %s: no \"content\" block defined", ErrTemplateParse, p.name)
		}
		*p.dst = clone
	}
	return r, nil
}

// Home renders index.html.
func (r *Renderer) Home(ctx context.Context, deals []*catalog.Deal, cats []*catalog.Category) (Page, error) {
	data := r.newPage(homePrefix, deals)
	data.Title = r.bc.SiteName + " - " + r.bc.Tagline
	data.Description = r.bc.Description
	data.Canonical = r.bc.Canonical("")
	data.SitemapLink = true
	data.Deals = deals
	data.Categories = cats
	return r.execute(ctx, r.home, HomePath(), data)
}

// Deal renders deal/<slug>/index.html. related is shown below the body and
// all feeds the search index.
func (r *Renderer) Deal(ctx context.Context, d *catalog.Deal, related, all []*catalog.Deal) (Page, error) {
	canonical := r.bc.Canonical(DealDir + "/" + d.Slug + "/")

	data := r.newPage(dealPrefix, all)
	data.Title = dateutil.ReplaceYear(d.MetaTitle, r.bc.YearToken, r.bc.Year)
	data.Description = dateutil.ReplaceYear(d.MetaDescription, r.bc.YearToken, r.bc.Year)
	data.Canonical = canonical
	data.Breadcrumbs = []Crumb{
		{Label: "Home", URL: dealPrefix + IndexFile},
		{Label: "Deals", URL: dealPrefix + IndexFile + "#deals"},
		{Label: d.Company, URL: dealURL(dealPrefix, d.Slug)},
	}
	data.Deal = d
	data.Heading = fmt.Sprintf("%s Referral Code %d", d.Company, r.bc.Year)
	data.Related = related
	if d.IsCode() {
		data.Scripts = []string{CopyScriptFile}
	}
	data.Offer = &offer{
		Context:     "https://schema.org",
		Type:        "Offer",
		Name:        d.Company + " Referral Code",
		Description: d.Benefit,
		URL:         canonical,
		Seller:      organization{Type: "Organization", Name: d.Company},
		PriceSpecification: priceSpec{
			Type:          "PriceSpecification",
			Price:         "0",
			PriceCurrency: "USD",
		},
	}
	return r.execute(ctx, r.deal, DealPath(d.Slug), data)
}

// Category renders <slug>/index.html with grid and table views.
func (r *Renderer) Category(ctx context.Context, c *catalog.Category, all []*catalog.Deal) (Page, error) {
	data := r.newPage(categoryPrefix, all)
	data.Title = fmt.Sprintf("%s Referral Codes %d - Verified Promo Codes | %s", c.Name, r.bc.Year, r.bc.SiteName)
	data.Description = fmt.Sprintf(
		"Find verified %s referral codes and promo codes. %d working codes tested today. Save money with trusted offers.",
		lower(c.Name), len(c.Deals))
	data.Canonical = r.bc.Canonical(c.Slug + "/")
	data.Breadcrumbs = []Crumb{
		{Label: "Home", URL: categoryPrefix + IndexFile},
		{Label: "Categories", URL: categoryPrefix + IndexFile + "#deals"},
		{Label: c.Name, URL: categoryURL(categoryPrefix, c.Slug)},
	}
	data.Scripts = []string{CategoryScriptFile}
	data.Category = c
	return r.execute(ctx, r.category, CategoryPath(c.Slug), data)
}

// newPage fills the fields shared by every page.
func (r *Renderer) newPage(prefix string, all []*catalog.Deal) *pageData {
	return &pageData{
		Site:        r.bc,
		Prefix:      prefix,
		Styles:      r.bc.ExtraStyles,
		SearchIndex: SearchIndex(prefix, all),
	}
}

func (r *Renderer) execute(ctx context.Context, tmpl *template.Template, path string, data *pageData) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, assets.TemplateBase, data); err != nil {
		return Page{}, fmt.Errorf("%w: %s: %v", ErrPageRender, path, err)
	}

	out := buf.String()
	if r.bc.Minify {
		out = Minify(out)
	}
	return Page{Path: path, Content: []byte(out)}, nil
}

// SearchIndex projects deals for the in-page search box, with links relative
// to a page at prefix.
func SearchIndex(prefix string, deals []*catalog.Deal) []search.Entry {
	out := make([]search.Entry, 0, len(deals))
	for _, d := range deals {
		out = append(out, d.Entry(dealURL(prefix, d.Slug)))
	}
	return out
}

// Summary returns the first paragraph of a deal's raw body.
func Summary(d *catalog.Deal) string {
	first, _, _ := strings.Cut(d.Body, "\n\n")
	return strings.TrimSpace(first)
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		// #nosec G203 -- body and blurb HTML come from the markdown renderer
		"trusted":     func(s string) template.HTML { return template.HTML(s) },
		"summary":     Summary,
		"amount":      func(d *catalog.Deal) string { return formatNumber(d.Amount()) },
		"pct":         formatNumber,
		"lower":       lower,
		"card":        func(prefix string, d *catalog.Deal) cardData { return cardData{Prefix: prefix, Deal: d} },
		"dealURL":     dealURL,
		"categoryURL": categoryURL,
		"lastIndex":   func(c []Crumb) int { return len(c) - 1 },
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
