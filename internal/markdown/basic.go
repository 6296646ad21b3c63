package markdown

import (
	"regexp"
	"strings"
)

// Inline patterns. They are non-greedy and non-nested: "**a **b** c**"
// and "[a [b]](u)" do not produce nested elements, and there is no way to
// escape a delimiter. Body text is not HTML-escaped; bodies are trusted
// author content.
var (
	boldPattern    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	linkPattern    = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	orderedPattern = regexp.MustCompile(`^\d+\.\s`)
)

// listKind is the single piece of state RenderBody tracks.
type listKind int

const (
	listNone listKind = iota
	listUnordered
	listOrdered
)

func (k listKind) open() string {
	if k == listOrdered {
		return "<ol>"
	}
	return "<ul>"
}

func (k listKind) close() string {
	if k == listOrdered {
		return "</ol>"
	}
	return "</ul>"
}

// Inline applies the bold then link substitutions to a single line.
func Inline(line string) string {
	line = boldPattern.ReplaceAllString(line, "<strong>$1</strong>")
	return linkPattern.ReplaceAllString(line, `<a href="$2">$1</a>`)
}

// RenderBody converts body text to newline-joined block HTML.
//
// Lines are trimmed, then classified in order: "### ", "## ", "# " headings
// (text kept verbatim), "- " unordered items, "N. " ordered items, and
// everything else as paragraph text. Consecutive paragraph lines are joined
// with a single space. A blank line ends the paragraph and any open list.
// The output never contains an unclosed list.
func RenderBody(body string) string {
	var (
		out       []string
		open      = listNone
		paragraph []string
	)

	flush := func() {
		if len(paragraph) == 0 {
			return
		}
		text := strings.TrimSpace(strings.Join(paragraph, " "))
		if text != "" {
			out = append(out, "<p>"+text+"</p>")
		}
		paragraph = paragraph[:0]
	}
	closeList := func() {
		if open != listNone {
			out = append(out, open.close())
			open = listNone
		}
	}
	ensureList := func(kind listKind) {
		if open == kind {
			return
		}
		closeList()
		out = append(out, kind.open())
		open = kind
	}

	for _, raw := range strings.Split(body, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
			flush()
			closeList()
		case strings.HasPrefix(line, "### "):
			flush()
			closeList()
			out = append(out, "<h3>"+line[4:]+"</h3>")
		case strings.HasPrefix(line, "## "):
			flush()
			closeList()
			out = append(out, "<h2>"+line[3:]+"</h2>")
		case strings.HasPrefix(line, "# "):
			flush()
			closeList()
			out = append(out, "<h1>"+line[2:]+"</h1>")
		case strings.HasPrefix(line, "- "):
			flush()
			ensureList(listUnordered)
			out = append(out, "<li>"+Inline(line[2:])+"</li>")
		case orderedPattern.MatchString(line):
			flush()
			ensureList(listOrdered)
			item := orderedPattern.ReplaceAllString(line, "")
			out = append(out, "<li>"+Inline(item)+"</li>")
		default:
			closeList()
			paragraph = append(paragraph, Inline(line))
		}
	}

	flush()
	closeList()

	return strings.Join(out, "\n")
}
