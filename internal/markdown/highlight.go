package markdown

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// HighlightStyle is the chroma style used for code blocks.
const HighlightStyle = "github"

// HighlightCSS returns the stylesheet matching the class names emitted by
// the goldmark engine. Unknown style names fall back to chroma's default.
func HighlightCSS(style string) ([]byte, error) {
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	var buf bytes.Buffer
	if err := formatter.WriteCSS(&buf, styles.Get(style)); err != nil {
		return nil, fmt.Errorf("writing highlight stylesheet: %w", err)
	}
	return buf.Bytes(), nil
}
