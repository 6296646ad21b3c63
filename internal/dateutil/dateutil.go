// Package dateutil resolves the build year and the "last updated" text
// shown on generated pages.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// ErrInvalidYear indicates a year value that is neither "auto" nor a year.
var ErrInvalidYear = errors.New("invalid year")

// Auto selects the value from the build clock.
const Auto = "auto"

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is specified without a format.
const DefaultDateFormat = "YYYY-MM-DD"

// Now returns the build clock reading.
func Now() time.Time { return time.Now() }

// dateTokens maps user-friendly tokens to Go layout components,
// longest first so matching is greedy.
var dateTokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// ParseDateFormat converts a token format (YYYY, YY, MMMM, MMM, MM, M, DD,
// D) to a Go time layout. Text inside brackets is kept literally, so
// "[Updated] MMM YYYY" renders "Updated Jan 2026".
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var layout strings.Builder
	layout.Grow(len(format) + 10)

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			layout.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}
		n := writeToken(&layout, format[i:])
		if n == 0 {
			layout.WriteByte(format[i])
			n = 1
		}
		i += n
	}

	return layout.String(), nil
}

// writeToken writes the layout for the token at the start of s and
// returns how many bytes it consumed, or 0 if none matched.
func writeToken(b *strings.Builder, s string) int {
	for _, t := range dateTokens {
		if strings.HasPrefix(s, t.token) {
			b.WriteString(t.layout)
			return len(t.token)
		}
	}
	return 0
}

// ResolveDate handles "auto" and "auto:FORMAT" values:
//   - "auto" renders t as YYYY-MM-DD
//   - "auto:FORMAT" renders t with a token format or preset name
//   - anything else is returned unchanged
func ResolveDate(value string, t time.Time) (string, error) {
	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, Auto) {
		return value, nil
	}

	format := DefaultDateFormat
	if lower != Auto {
		if !strings.HasPrefix(lower, Auto+":") {
			return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
		}
		format = value[len(Auto)+1:]
		if format == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		if preset, ok := DatePresets[strings.ToLower(format)]; ok {
			format = preset
		}
	}

	layout, err := ParseDateFormat(format)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

// ResolveYear returns the year of t for "" or "auto", or the value itself
// when it is a four-digit year.
func ResolveYear(value string, t time.Time) (int, error) {
	v := strings.TrimSpace(value)
	if v == "" || strings.EqualFold(v, Auto) {
		return t.Year(), nil
	}
	year, err := strconv.Atoi(v)
	if err != nil || len(v) != 4 || year < 1000 {
		return 0, fmt.Errorf("%w: %q (use \"auto\" or a four-digit year)", ErrInvalidYear, value)
	}
	return year, nil
}

// ReplaceYear replaces every occurrence of token in text with year.
// An empty token leaves text unchanged.
func ReplaceYear(text, token string, year int) string {
	if token == "" {
		return text
	}
	return strings.ReplaceAll(text, token, strconv.Itoa(year))
}
