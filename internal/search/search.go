// Package search ranks catalog entries against a free-text query.
//
// Scoring combines case-insensitive substring containment across three
// weighted fields with a bounded Levenshtein fallback on the first two.
// The same algorithm ships to the browser in the embedded search script.
package search

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// MinQueryLen is the shortest trimmed query, in runes, that is searched.
const MinQueryLen = 2

// MaxResults caps the number of matches returned.
const MaxResults = 5

// Field weights. A substring hit scores weight minus its rune offset, a
// fuzzy hit scores weight minus the edit distance.
const (
	primaryWeight        = 100
	secondaryWeight      = 80
	tertiaryWeight       = 60
	fuzzyPrimaryWeight   = 40
	fuzzySecondaryWeight = 30
)

// Fuzzy acceptance bounds: distance <= maxDistance and
// distance < maxDistanceRatio * field length.
const (
	maxDistance      = 2
	maxDistanceRatio = 0.4
)

// Record is a searchable item exposing three fields in priority order.
type Record interface {
	Primary() string
	Secondary() string
	Tertiary() string
}

// Match is a scored record. Index is the record's position in the input.
type Match struct {
	Record Record
	Index  int
	Score  int
}

// Search scores every record against query and returns at most MaxResults
// matches, best first. Equal scores keep input order.
func Search(query string, index []Record) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(q) < MinQueryLen {
		return nil
	}

	var matches []Match
	for i, rec := range index {
		if s := Score(q, rec); s > 0 {
			matches = append(matches, Match{Record: rec, Index: i, Score: s})
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})

	if len(matches) > MaxResults {
		matches = matches[:MaxResults]
	}
	return matches
}

// Score returns the score of rec for an already lower-cased, trimmed query.
// Zero or less means no match.
func Score(q string, rec Record) int {
	primary := strings.ToLower(rec.Primary())
	secondary := strings.ToLower(rec.Secondary())
	tertiary := strings.ToLower(rec.Tertiary())

	if i := runeIndex(primary, q); i >= 0 {
		return primaryWeight - i
	}
	if i := runeIndex(secondary, q); i >= 0 {
		return secondaryWeight - i
	}
	if i := runeIndex(tertiary, q); i >= 0 {
		return tertiaryWeight - i
	}
	if d, ok := fuzzy(q, primary); ok {
		return fuzzyPrimaryWeight - d
	}
	if d, ok := fuzzy(q, secondary); ok {
		return fuzzySecondaryWeight - d
	}
	return 0
}

func fuzzy(q, field string) (int, bool) {
	d := Levenshtein(q, field)
	n := utf8.RuneCountInString(field)
	return d, d <= maxDistance && float64(d) < maxDistanceRatio*float64(n)
}

// runeIndex is strings.Index counted in runes.
func runeIndex(s, substr string) int {
	i := strings.Index(s, substr)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(s[:i])
}
