package site

import (
	"encoding/xml"
	"fmt"

	"github.com/alnah/go-dealsite/internal/catalog"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Sitemap priorities by page kind.
const (
	PriorityHome     = "1.0"
	PriorityDeal     = "0.8"
	PriorityCategory = "0.7"
)

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	NS      string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Sitemap renders sitemap.xml listing the home page, every deal and every
// category, in that order.
func Sitemap(bc BuildContext, deals []*catalog.Deal, cats []*catalog.Category) ([]byte, error) {
	set := urlSet{NS: sitemapNS}
	add := func(loc, priority string) {
		set.URLs = append(set.URLs, sitemapURL{Loc: loc, ChangeFreq: "daily", Priority: priority})
	}

	add(bc.Canonical(""), PriorityHome)
	for _, d := range deals {
		add(bc.Canonical(DealDir+"/"+d.Slug+"/"), PriorityDeal)
	}
	for _, c := range cats {
		add(bc.Canonical(c.Slug+"/"), PriorityCategory)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding sitemap: %w", err)
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}
