package site

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/alnah/go-dealsite/internal/assets"
	"github.com/alnah/go-dealsite/internal/catalog"
)

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func testContext() BuildContext {
	return BuildContext{
		SiteName:     "Deals",
		Tagline:      "Verified Referral Codes That Actually Work",
		Description:  "Verified codes.",
		BaseURL:      "https://deals.test",
		Year:         2031,
		YearToken:    "{year}",
		Updated:      "March 1, 2031",
		ContactEmail: "hi@deals.test",
		DebounceMs:   150,
		RelatedLimit: 3,
	}
}

func testDeals() []*catalog.Deal {
	return []*catalog.Deal{
		{
			Company:         "Acme Bank",
			Category:        "Banking",
			CategorySlug:    "banking",
			Benefit:         "$100 bonus",
			BenefitAmount:   "$100",
			CodeType:        catalog.CodeTypeCode,
			Code:            "ACME100",
			URL:             "https://acme.test/join",
			Slug:            "acme-bank",
			MetaTitle:       "Acme Bank Referral {year}",
			MetaDescription: "Acme bonus for {year} and {year}",
			SuccessRate:     97,
			Verified:        true,
			Body:            "First <b>paragraph</b>.\n\nSecond paragraph.",
			BodyHTML:        "<p>First paragraph.</p>\n<h2>Terms</h2>",
		},
		{
			Company:         "Brio",
			Category:        "Banking",
			CategorySlug:    "banking",
			Benefit:         "$25 credit",
			BenefitAmount:   "$25",
			CodeType:        catalog.CodeTypeLink,
			URL:             "https://brio.test/r",
			Slug:            "brio",
			MetaTitle:       "Brio",
			MetaDescription: "Brio credit",
			SuccessRate:     100,
			Verified:        true,
			Body:            "Brio body.",
			BodyHTML:        "<p>Brio body.</p>",
		},
		{
			Company:         "Cafe Cloud",
			Category:        "Food & Drink",
			CategorySlug:    "food-drink",
			Benefit:         "Free coffee",
			BenefitAmount:   "free",
			CodeType:        catalog.CodeTypeLink,
			URL:             "https://cafe.test",
			Slug:            "cafe-cloud",
			MetaTitle:       "Cafe",
			MetaDescription: "Cafe",
			SuccessRate:     100,
			Verified:        true,
			Body:            "Coffee.",
			BodyHTML:        "<p>Coffee.</p>",
		},
	}
}

func newTestRenderer(t *testing.T, bc BuildContext) *Renderer {
	t.Helper()

	set, err := assets.LoadTemplateSet(assets.NewEmbeddedLoader())
	if err != nil {
		t.Fatalf("LoadTemplateSet() unexpected error: %v", err)
	}
	r, err := NewRenderer(set, bc)
	if err != nil {
		t.Fatalf("NewRenderer() unexpected error: %v", err)
	}
	return r
}

func parsePage(t *testing.T, p Page) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(p.Content))
	if err != nil {
		t.Fatalf("parsing %s: %v", p.Path, err)
	}
	return doc
}

// searchIndexFrom extracts the embedded search data from a page.
func searchIndexFrom(t *testing.T, doc *goquery.Document) []map[string]string {
	t.Helper()

	var script string
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		if strings.Contains(s.Text(), "window.dealsite") {
			script = s.Text()
		}
	})
	start := strings.Index(script, "searchData: ")
	end := strings.Index(script, ", debounceMs")
	if start < 0 || end < 0 {
		t.Fatalf("search data not found in script %q", script)
	}

	var entries []map[string]string
	if err := json.Unmarshal([]byte(script[start+len("searchData: "):end]), &entries); err != nil {
		t.Fatalf("decoding search data: %v", err)
	}
	return entries
}

// ---------------------------------------------------------------------------
// NewRenderer
// ---------------------------------------------------------------------------

func TestNewRenderer_ParseErrors(t *testing.T) {
	t.Parallel()

	valid, err := assets.LoadTemplateSet(assets.NewEmbeddedLoader())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		mutate func(*assets.TemplateSet)
	}{
		{name: "broken base", mutate: func(s *assets.TemplateSet) { s.Base = "{{.Title" }},
		{name: "broken card", mutate: func(s *assets.TemplateSet) { s.Card = "{{end}}" }},
		{name: "page without content block", mutate: func(s *assets.TemplateSet) { s.Home = "<p>no block</p>" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			set := *valid
			tt.mutate(&set)
			if _, err := NewRenderer(&set, testContext()); !errors.Is(err, ErrTemplateParse) {
				t.Errorf("NewRenderer() error = %v, want ErrTemplateParse", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Home
// ---------------------------------------------------------------------------

func TestRenderer_Home(t *testing.T) {
	t.Parallel()

	deals := testDeals()
	cats := catalog.GroupCategories(deals, nil)
	r := newTestRenderer(t, testContext())

	page, err := r.Home(context.Background(), deals, cats)
	if err != nil {
		t.Fatalf("Home() unexpected error: %v", err)
	}
	if page.Path != "index.html" {
		t.Errorf("Path = %q, want index.html", page.Path)
	}

	doc := parsePage(t, page)

	if got := doc.Find("title").Text(); got != "Deals - Verified Referral Codes That Actually Work" {
		t.Errorf("title = %q", got)
	}
	if got, _ := doc.Find(`link[rel="canonical"]`).Attr("href"); got != "https://deals.test/" {
		t.Errorf("canonical = %q, want https://deals.test/", got)
	}
	if doc.Find(`link[rel="sitemap"]`).Length() != 1 {
		t.Error("home page should link the sitemap")
	}
	if got, _ := doc.Find(`link[rel="stylesheet"]`).First().Attr("href"); got != "./style.css" {
		t.Errorf("stylesheet href = %q, want ./style.css", got)
	}
	if got := doc.Find(".deal-card").Length(); got != 3 {
		t.Errorf("cards = %d, want 3", got)
	}
	if got := doc.Find(".trust-number").Eq(1).Text(); got != "3+" {
		t.Errorf("partner count = %q, want 3+", got)
	}
	for _, id := range []string{"#deals", "#how-it-works", "#about", "#search-input", "#search-results"} {
		if doc.Find(id).Length() == 0 {
			t.Errorf("missing element %s", id)
		}
	}
	if got := doc.Find(".trust-card").Length(); got != 4 {
		t.Errorf("trust cards = %d, want 4", got)
	}

	first := doc.Find(".deal-card").First()
	if got, _ := first.Find(".deal-cta").Attr("href"); got != "./deal/acme-bank/index.html" {
		t.Errorf("card link = %q", got)
	}
	if got := first.Find(".deal-description").Text(); got != "First <b>paragraph</b>." {
		t.Errorf("card description = %q, want escaped first paragraph", got)
	}
	if got := first.Find(".success-percentage").Text(); got != "97%" {
		t.Errorf("success rate = %q, want 97%%", got)
	}
	if got := first.Find(".code-label").Text(); got != "Your Referral Code" {
		t.Errorf("code label = %q", got)
	}
	if got := doc.Find(".deal-card").Eq(1).Find(".code-label").Text(); got != "Referral Link Required" {
		t.Errorf("link label = %q", got)
	}

	entries := searchIndexFrom(t, doc)
	if len(entries) != 3 {
		t.Fatalf("search entries = %d, want 3", len(entries))
	}
	if entries[0]["company"] != "Acme Bank" || entries[0]["url"] != "./deal/acme-bank/index.html" {
		t.Errorf("search entry = %v", entries[0])
	}
}

// ---------------------------------------------------------------------------
// Deal
// ---------------------------------------------------------------------------

func TestRenderer_Deal(t *testing.T) {
	t.Parallel()

	deals := testDeals()
	r := newTestRenderer(t, testContext())

	page, err := r.Deal(context.Background(), deals[0], deals[1:2], deals)
	if err != nil {
		t.Fatalf("Deal() unexpected error: %v", err)
	}
	if page.Path != "deal/acme-bank/index.html" {
		t.Errorf("Path = %q", page.Path)
	}

	doc := parsePage(t, page)

	if got := doc.Find("title").Text(); got != "Acme Bank Referral 2031" {
		t.Errorf("title = %q, want year substituted", got)
	}
	if got, _ := doc.Find(`meta[name="description"]`).Attr("content"); got != "Acme bonus for 2031 and 2031" {
		t.Errorf("description = %q, want every token replaced", got)
	}
	if got := doc.Find("h1").Text(); got != "Acme Bank Referral Code 2031" {
		t.Errorf("h1 = %q", got)
	}
	if got, _ := doc.Find(`link[rel="canonical"]`).Attr("href"); got != "https://deals.test/deal/acme-bank/" {
		t.Errorf("canonical = %q", got)
	}
	if doc.Find(`link[rel="sitemap"]`).Length() != 0 {
		t.Error("deal page should not link the sitemap")
	}
	if doc.Find(".deal-main h2").Text() != "Terms" {
		t.Error("body HTML should be rendered unescaped")
	}
	if got := doc.Find(".copy-button").Length(); got != 1 {
		t.Errorf("copy buttons = %d, want 1", got)
	}
	if got, _ := doc.Find(".copy-button").Attr("data-code"); got != deals[0].Code {
		t.Errorf("copy button data-code = %q, want %q", got, deals[0].Code)
	}
	if doc.Find(`script[src="../../copy.js"]`).Length() != 1 {
		t.Error("code deal page should load copy.js")
	}
	if got := doc.Find(".deal-cta-large").Text(); !strings.Contains(got, "Claim Your $100 Offer Now") {
		t.Errorf("cta = %q", got)
	}
	if got := doc.Find(".verified-banner").Text(); !strings.Contains(got, "Verified 97% Success Rate") {
		t.Errorf("banner = %q", got)
	}
	if got := doc.Find(".related-deals .deal-card").Length(); got != 1 {
		t.Errorf("related cards = %d, want 1", got)
	}
	if got := doc.Find(".related-deals h2").Text(); got != "More Banking Deals" {
		t.Errorf("related heading = %q", got)
	}

	crumbs := doc.Find(".breadcrumbs a")
	if crumbs.Length() != 2 {
		t.Fatalf("breadcrumb links = %d, want 2", crumbs.Length())
	}
	if got, _ := crumbs.First().Attr("href"); got != "../../index.html" {
		t.Errorf("home crumb = %q", got)
	}
	if got := doc.Find(".breadcrumbs span").Last().Text(); got != "Acme Bank" {
		t.Errorf("last crumb = %q", got)
	}

	var ld map[string]any
	if err := json.Unmarshal([]byte(doc.Find(`script[type="application/ld+json"]`).Text()), &ld); err != nil {
		t.Fatalf("decoding JSON-LD: %v", err)
	}
	if ld["@type"] != "Offer" || ld["name"] != "Acme Bank Referral Code" || ld["url"] != "https://deals.test/deal/acme-bank/" {
		t.Errorf("JSON-LD = %v", ld)
	}

	entries := searchIndexFrom(t, doc)
	if entries[2]["url"] != "../../deal/cafe-cloud/index.html" {
		t.Errorf("search url = %q, want page-relative link", entries[2]["url"])
	}
}

func TestRenderer_Deal_LinkType(t *testing.T) {
	t.Parallel()

	deals := testDeals()
	r := newTestRenderer(t, testContext())

	page, err := r.Deal(context.Background(), deals[1], nil, deals)
	if err != nil {
		t.Fatalf("Deal() unexpected error: %v", err)
	}
	doc := parsePage(t, page)

	if doc.Find(".copy-button").Length() != 0 {
		t.Error("link deals should not render a copy button")
	}
	if doc.Find(`script[src="../../copy.js"]`).Length() != 0 {
		t.Error("link deals should not load copy.js")
	}
	if doc.Find(".related-deals").Length() != 0 {
		t.Error("related section should be omitted when empty")
	}
	doc.Find(".quick-facts li").Each(func(_ int, s *goquery.Selection) {
		if strings.HasPrefix(s.Text(), "Code:") {
			t.Error("quick facts should omit the code line without a code")
		}
	})
}

// ---------------------------------------------------------------------------
// Category
// ---------------------------------------------------------------------------

func TestRenderer_Category(t *testing.T) {
	t.Parallel()

	deals := testDeals()
	cats := catalog.GroupCategories(deals, catalog.Blurbs{"banking": "All about banks."})
	cats[0].BlurbHTML = "<p>All about <em>banks</em>.</p>"
	r := newTestRenderer(t, testContext())

	page, err := r.Category(context.Background(), cats[0], deals)
	if err != nil {
		t.Fatalf("Category() unexpected error: %v", err)
	}
	if page.Path != "banking/index.html" {
		t.Errorf("Path = %q", page.Path)
	}

	doc := parsePage(t, page)

	if got := doc.Find("title").Text(); got != "Banking Referral Codes 2031 - Verified Promo Codes | Deals" {
		t.Errorf("title = %q", got)
	}
	wantDesc := "Find verified banking referral codes and promo codes. 2 working codes tested today. Save money with trusted offers."
	if got, _ := doc.Find(`meta[name="description"]`).Attr("content"); got != wantDesc {
		t.Errorf("description = %q, want %q", got, wantDesc)
	}
	if doc.Find(".category-blurb em").Length() != 1 {
		t.Error("blurb HTML should be rendered")
	}
	if got := doc.Find("#grid-view .deal-card").Length(); got != 2 {
		t.Errorf("grid cards = %d, want 2", got)
	}

	rows := doc.Find(".deals-table tbody tr")
	if rows.Length() != 2 {
		t.Fatalf("table rows = %d, want 2", rows.Length())
	}
	if got, _ := rows.First().Attr("data-company"); got != "Acme Bank" {
		t.Errorf("data-company = %q", got)
	}
	if got, _ := rows.First().Attr("data-amount"); got != "100" {
		t.Errorf("data-amount = %q, want 100", got)
	}
	if got := doc.Find(`.view-toggle[data-view="table"]`).Length(); got != 1 {
		t.Errorf("table toggle = %d, want 1", got)
	}
	if got := doc.Find(`.sort-btn[data-sort="amount"]`).Length(); got != 1 {
		t.Errorf("amount sort = %d, want 1", got)
	}
	if got, _ := doc.Find(`script[src="../category.js"]`).Attr("src"); got != "../category.js" {
		t.Error("category page should load category.js")
	}
	if got, _ := doc.Find(".deal-category a").First().Attr("href"); got != "../banking/index.html" {
		t.Errorf("category link = %q", got)
	}
}

func TestRenderer_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newTestRenderer(t, testContext())
	if _, err := r.Home(ctx, testDeals(), nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Home() error = %v, want context.Canceled", err)
	}
}

func TestRenderer_MinifyAndExtraStyles(t *testing.T) {
	t.Parallel()

	bc := testContext()
	bc.Minify = true
	bc.ExtraStyles = []string{HighlightFile}
	r := newTestRenderer(t, bc)

	page, err := r.Home(context.Background(), testDeals(), nil)
	if err != nil {
		t.Fatalf("Home() unexpected error: %v", err)
	}
	if bytes.Contains(page.Content, []byte("\n\n")) {
		t.Error("minified page should not contain blank lines")
	}
	doc := parsePage(t, page)
	if doc.Find(`link[href="./highlight.css"]`).Length() != 1 {
		t.Error("extra stylesheet should be linked")
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		body string
		want string
	}{
		{body: "One.\n\nTwo.", want: "One."},
		{body: "Only one", want: "Only one"},
		{body: "", want: ""},
		{body: "Line one\nline two\n\nNext", want: "Line one\nline two"},
	}

	for _, tt := range tests {
		if got := Summary(&catalog.Deal{Body: tt.body}); got != tt.want {
			t.Errorf("Summary(%q) = %q, want %q", tt.body, got, tt.want)
		}
	}
}
