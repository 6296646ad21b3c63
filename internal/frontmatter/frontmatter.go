// Package frontmatter splits a markdown document into its flat key/value
// header and its body.
//
// The header format is deliberately small: a line containing only "---",
// any number of "key: value" lines, and a closing "---" line. Values are
// scalars only (string, boolean or number). There is no nesting, quoting
// or escaping.
package frontmatter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Delimiter is the marker line that opens and closes the header block.
const Delimiter = "---"

// ErrFormat indicates the document does not start with a delimited header.
var ErrFormat = errors.New("invalid markdown format: missing front matter")

// FormatError reports a document whose front matter block is missing or unterminated.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: %s", ErrFormat, e.Reason)
}

// Unwrap allows errors.Is(err, ErrFormat).
func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// crlfOrCR matches Windows and classic Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Document is a parsed source file: its header record and its trimmed body.
type Document struct {
	Meta *Record
	Body string
}

// Parse splits raw into a Record and body text.
// The opening delimiter must be the very first line. The closing delimiter
// must be followed by a newline or the end of input. Header lines without a
// colon are ignored.
func Parse(raw string) (*Document, error) {
	content := crlfOrCR.ReplaceAllString(raw, "\n")

	if !strings.HasPrefix(content, Delimiter+"\n") {
		return nil, &FormatError{Reason: "document must start with a --- line"}
	}
	rest := content[len(Delimiter)+1:]

	header, body, ok := splitClosing(rest)
	if !ok {
		return nil, &FormatError{Reason: "closing --- line not found"}
	}

	return &Document{
		Meta: parseHeader(header),
		Body: strings.TrimSpace(body),
	}, nil
}

// splitClosing finds the first line equal to the delimiter, after at least
// one header line. It returns the header text before that line and the text
// after it.
func splitClosing(rest string) (header, body string, ok bool) {
	marker := "\n" + Delimiter
	offset := 0
	for {
		idx := strings.Index(rest[offset:], marker)
		if idx == -1 {
			return "", "", false
		}
		end := offset + idx + len(marker)
		if end == len(rest) {
			return rest[:offset+idx], "", true
		}
		if rest[end] == '\n' {
			return rest[:offset+idx], rest[end+1:], true
		}
		offset = end
	}
}

// parseHeader reads "key: value" lines into a Record.
func parseHeader(header string) *Record {
	rec := NewRecord()
	for _, line := range strings.Split(header, "\n") {
		key, raw, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		rec.Set(key, Coerce(strings.TrimSpace(raw)))
	}
	return rec
}
