// Package catalog turns parsed source documents into deals and categories.
//
// A Deal is built once from its front matter and rendered body, then
// treated as read-only. Categories are derived by grouping deals on their
// category slug; they are never stored on their own.
package catalog
