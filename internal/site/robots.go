package site

import "strings"

// Robots renders robots.txt: allow everything except the disallowed paths,
// then point crawlers at the sitemap.
func Robots(bc BuildContext, disallow []string) []byte {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	for _, p := range disallow {
		b.WriteString("Disallow: ")
		b.WriteString(p)
		b.WriteByte('\n')
	}
	b.WriteString("\nSitemap: ")
	b.WriteString(bc.Canonical(SitemapFile))
	b.WriteByte('\n')
	return []byte(b.String())
}
