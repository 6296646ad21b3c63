// Package site assembles the generated website: the home page, one page per
// deal and per category, plus sitemap.xml and robots.txt.
//
// Pages are html/template documents. Every page executes the "base" template,
// which renders the page's "content" block and the shared "card" partial.
// Build-wide values such as the year travel in a BuildContext passed to the
// Renderer; nothing reads the clock during rendering.
package site
