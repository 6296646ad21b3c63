package frontmatter

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the scalar type of a header value.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindNumber
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	default:
		return "string"
	}
}

// Value is a single coerced header value.
type Value struct {
	Kind Kind
	Str  string
	Bool bool
	Num  float64
}

// StringValue builds a string Value.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// BoolValue builds a boolean Value.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// NumberValue builds a numeric Value.
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// Coerce converts a trimmed raw value: "true"/"false" become booleans,
// anything that parses fully as a finite number becomes a number, and
// everything else stays a string.
func Coerce(raw string) Value {
	switch raw {
	case "true":
		return BoolValue(true)
	case "false":
		return BoolValue(false)
	case "":
		return StringValue("")
	}
	if n, ok := parseNumber(raw); ok {
		return NumberValue(n)
	}
	return StringValue(raw)
}

// parseNumber accepts decimal and exponent notation. Word forms such as
// "Inf" or "NaN" are rejected so they stay strings.
func parseNumber(raw string) (float64, bool) {
	if strings.ContainsAny(raw, "_xXpP") {
		return 0, false
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

// String renders the value back to its header form.
func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	default:
		return v.Str
	}
}

// Record is an ordered flat key/value table. The last assignment to a key
// wins; keys keep the position of their first appearance.
type Record struct {
	keys   []string
	values map[string]Value
}

// NewRecord returns an empty Record.
func NewRecord() *Record {
	return &Record{values: make(map[string]Value)}
}

// Set assigns key, replacing any earlier value.
func (r *Record) Set(key string, v Value) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// Get returns the value for key.
func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// String returns the value for key rendered as text, or "" when absent.
func (r *Record) String(key string) string {
	v, ok := r.values[key]
	if !ok {
		return ""
	}
	return v.String()
}

// Number returns the numeric value for key. ok is false when the key is
// absent or not a number.
func (r *Record) Number(key string) (n float64, ok bool) {
	v, found := r.values[key]
	if !found || v.Kind != KindNumber {
		return 0, false
	}
	return v.Num, true
}

// Keys returns keys in first-seen order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of keys.
func (r *Record) Len() int {
	return len(r.keys)
}

// Encode writes the record back as header lines, without delimiters.
func (r *Record) Encode() string {
	var b strings.Builder
	for _, k := range r.keys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(r.values[k].String())
		b.WriteByte('\n')
	}
	return b.String()
}
