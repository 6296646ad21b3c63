package catalog

import (
	"context"
	"fmt"

	"github.com/alnah/go-dealsite/internal/markdown"
)

// Category groups deals sharing a category slug.
type Category struct {
	Name      string
	Slug      string
	Blurb     string
	BlurbHTML string
	Deals     []*Deal
}

// GroupCategories derives categories from deals, in order of first
// appearance. The name comes from the first deal seen with each slug.
// Blurbs are looked up by slug; missing entries leave Blurb empty.
func GroupCategories(deals []*Deal, blurbs Blurbs) []*Category {
	var out []*Category
	bySlug := make(map[string]*Category)

	for _, d := range deals {
		c, ok := bySlug[d.CategorySlug]
		if !ok {
			c = &Category{
				Name:  d.Category,
				Slug:  d.CategorySlug,
				Blurb: blurbs[d.CategorySlug],
			}
			bySlug[d.CategorySlug] = c
			out = append(out, c)
		}
		c.Deals = append(c.Deals, d)
	}
	return out
}

// RenderBlurbs fills BlurbHTML for every category that has a blurb.
func RenderBlurbs(ctx context.Context, cats []*Category, r markdown.Renderer) error {
	for _, c := range cats {
		if c.Blurb == "" {
			continue
		}
		html, err := r.Render(ctx, c.Blurb)
		if err != nil {
			return fmt.Errorf("rendering blurb for %q: %w", c.Slug, err)
		}
		c.BlurbHTML = html
	}
	return nil
}

// Related returns up to limit other deals from the same category, in
// catalog order. A limit of zero or less returns nil.
func Related(deals []*Deal, deal *Deal, limit int) []*Deal {
	if limit <= 0 {
		return nil
	}
	var out []*Deal
	for _, d := range deals {
		if d == deal || d.Slug == deal.Slug || d.CategorySlug != deal.CategorySlug {
			continue
		}
		out = append(out, d)
		if len(out) == limit {
			break
		}
	}
	return out
}
