package catalog

import (
	"regexp"
	"strconv"
)

var (
	nonAmountChars = regexp.MustCompile(`[^0-9.]`)
	amountPrefix   = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)`)
)

// NumericAmount extracts a sortable number from a free-text amount such
// as "$100" or "1.5k". Everything but digits and dots is dropped, then the
// longest leading number is parsed. ok is false when nothing parses.
func NumericAmount(amount string) (value float64, ok bool) {
	digits := nonAmountChars.ReplaceAllString(amount, "")
	m := amountPrefix.FindString(digits)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
