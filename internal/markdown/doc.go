// Package markdown renders deal bodies and category blurbs to HTML fragments.
//
// Two engines are available:
//   - basic: a small line-oriented converter (headings, paragraphs, lists,
//     bold and links). This is the default.
//   - goldmark: CommonMark with GFM, footnotes and chroma syntax highlighting.
//
// Both return fragments only. Page chrome is assembled by internal/site.
package markdown
