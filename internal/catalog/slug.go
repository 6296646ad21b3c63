package catalog

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases s, collapses every run of characters outside
// [a-z0-9] into a single hyphen and trims hyphens from both ends.
//
//	Slugify("Food & Drink!") == "food-drink"
func Slugify(s string) string {
	lower := cases.Lower(language.Und).String(s)
	return strings.Trim(nonSlugRun.ReplaceAllString(lower, "-"), "-")
}

// IsSlug reports whether s is already a well-formed URL slug.
func IsSlug(s string) bool {
	return s != "" && slug.IsValid(s) && Slugify(s) == s
}

// SuggestSlug proposes a slug for an invalid value, preferring the
// normalizer's transliteration and falling back to Slugify.
func SuggestSlug(s string) string {
	if normalized, err := slug.Normalize(s); err == nil && normalized != "" {
		if fixed := Slugify(normalized); fixed != "" {
			return fixed
		}
	}
	return Slugify(s)
}
