package minifyliterals

import "strings"

// DefaultShouldMinify is the default template filter: untagged literals are
// out of scope, and a tag whose text contains "html" under case-insensitive
// comparison is in scope. Tags like "getHTML()" or "templateHtml()" qualify;
// "css" does not.
func DefaultShouldMinify(t *Template) bool {
	return t.Tag != "" && strings.Contains(strings.ToLower(t.Tag), "html")
}

// DefaultShouldMinifyCSS matches templates whose tag contains "css" under
// case-insensitive comparison. CSS minification is opt-in: set
// Options.ShouldMinifyCSS to this (or any predicate) to enable it.
func DefaultShouldMinifyCSS(t *Template) bool {
	return t.Tag != "" && strings.Contains(strings.ToLower(t.Tag), "css")
}
