package site

import (
	"regexp"
	"strings"
)

var (
	blankLines     = regexp.MustCompile(`\n\s*\n`)
	indentedTag    = regexp.MustCompile(`\n\s+<`)
	tagTrailingGap = regexp.MustCompile(`>\s+\n`)
	newlineRuns    = regexp.MustCompile(`\n+`)
)

// Minify collapses blank lines and whitespace around tags. Text inside
// elements is left alone apart from those line boundaries, so <pre> blocks
// lose only their blank lines.
func Minify(html string) string {
	html = blankLines.ReplaceAllString(html, "\n")
	html = indentedTag.ReplaceAllString(html, "\n<")
	html = tagTrailingGap.ReplaceAllString(html, ">\n")
	html = newlineRuns.ReplaceAllString(html, "\n")
	return strings.TrimSpace(html)
}
