package catalog

import (
	"context"
	"fmt"

	"github.com/alnah/go-dealsite/internal/frontmatter"
	"github.com/alnah/go-dealsite/internal/markdown"
	"github.com/alnah/go-dealsite/internal/search"
)

// Front matter keys read by NewDeal.
const (
	KeyCompany         = "company"
	KeyCategory        = "category"
	KeyCategorySlug    = "categorySlug"
	KeyBenefit         = "benefit"
	KeyBenefitAmount   = "benefitAmount"
	KeyCodeType        = "codeType"
	KeyCode            = "code"
	KeyURL             = "url"
	KeySlug            = "slug"
	KeyMetaTitle       = "metaTitle"
	KeyMetaDescription = "metaDescription"
	KeySuccessRate     = "successRate"
	KeyPriority        = "priority"
)

// Code types.
const (
	CodeTypeCode = "code"
	CodeTypeLink = "link"
)

// DefaultSuccessRate applies when successRate is absent.
const DefaultSuccessRate = 100

// Deal is one published catalog item. The json tags name the front matter
// keys and are used as field names in validation errors.
type Deal struct {
	Source string              `json:"-"`
	Meta   *frontmatter.Record `json:"-"`

	Company         string `json:"company"`
	Category        string `json:"category"`
	CategorySlug    string `json:"categorySlug"`
	Benefit         string `json:"benefit"`
	BenefitAmount   string `json:"benefitAmount"`
	CodeType        string `json:"codeType"`
	Code            string `json:"code"`
	URL             string `json:"url"`
	Slug            string `json:"slug"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`

	SuccessRate float64 `json:"successRate"`
	Priority    float64 `json:"priority"`
	HasPriority bool    `json:"-"`
	Verified    bool    `json:"-"`

	Body     string `json:"-"`
	BodyHTML string `json:"-"`
}

// NewDeal merges a parsed document with derived fields and renders its body.
// The category slug comes from categorySlug when set, else from the category
// name. Every deal is marked verified.
func NewDeal(ctx context.Context, source string, doc *frontmatter.Document, r markdown.Renderer) (*Deal, error) {
	meta := doc.Meta
	d := &Deal{
		Source:          source,
		Meta:            meta,
		Company:         meta.String(KeyCompany),
		Category:        meta.String(KeyCategory),
		CategorySlug:    meta.String(KeyCategorySlug),
		Benefit:         meta.String(KeyBenefit),
		BenefitAmount:   meta.String(KeyBenefitAmount),
		CodeType:        meta.String(KeyCodeType),
		Code:            meta.String(KeyCode),
		URL:             meta.String(KeyURL),
		Slug:            meta.String(KeySlug),
		MetaTitle:       meta.String(KeyMetaTitle),
		MetaDescription: meta.String(KeyMetaDescription),
		SuccessRate:     DefaultSuccessRate,
		Verified:        true,
		Body:            doc.Body,
	}

	if d.CategorySlug == "" {
		d.CategorySlug = Slugify(d.Category)
	}
	if rate, ok := meta.Number(KeySuccessRate); ok {
		d.SuccessRate = rate
	}
	if p, ok := meta.Number(KeyPriority); ok {
		d.Priority = p
		d.HasPriority = true
	}

	html, err := r.Render(ctx, doc.Body)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", source, err)
	}
	d.BodyHTML = html

	return d, nil
}

// Amount returns the numeric value of BenefitAmount, or 0.
func (d *Deal) Amount() float64 {
	v, _ := NumericAmount(d.BenefitAmount)
	return v
}

// IsCode reports whether the deal is redeemed with a code.
func (d *Deal) IsCode() bool {
	return d.CodeType == CodeTypeCode
}

// Entry projects the deal for search. url is the page-relative link.
func (d *Deal) Entry(url string) search.Entry {
	return search.Entry{
		Company:  d.Company,
		Category: d.Category,
		Benefit:  d.Benefit,
		Slug:     d.Slug,
		URL:      url,
	}
}
