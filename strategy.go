package minifyliterals

import (
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
)

// MinifyOptions configures the default minification step. The zero value is
// the conservative default: collapse insignificant whitespace, strip
// comments, normalize attribute quoting, and keep end tags, document tags,
// and default attribute values in place.
type MinifyOptions struct {
	// KeepComments preserves HTML comments.
	KeepComments bool
	// KeepQuotes preserves attribute quoting exactly as written.
	KeepQuotes bool
	// KeepWhitespace preserves whitespace between inline tags.
	KeepWhitespace bool
	// RemoveEndTags allows omitting optional end tags such as </li>.
	RemoveEndTags bool
	// RemoveDocumentTags allows stripping html, head, and body tags.
	RemoveDocumentTags bool
	// RemoveDefaultAttrVals allows dropping attribute values that equal
	// their HTML default.
	RemoveDefaultAttrVals bool
	// MinifyCSS also minifies <style> bodies and style attributes inside
	// HTML templates, and is implied for CSS-tagged templates.
	MinifyCSS bool
	// CSSPrecision is the number of significant digits kept in CSS numbers;
	// 0 keeps all digits.
	CSSPrecision int
}

// Strategy is the pluggable placeholder strategy: four pure operations the
// pipeline composes to minify one template's markup without disturbing its
// expression holes, plus an optional CSS variant of the minify step. A nil
// field falls back to the default operation, so partial overrides compose
// with the defaults.
type Strategy struct {
	// GetPlaceholder mints a token that is not a substring of any part's
	// text, for any number of holes including zero.
	GetPlaceholder func(parts []Part) string
	// CombineHTMLStrings fuses the parts into one markup document with the
	// placeholder marking each expression hole (between consecutive parts
	// only, never before the first or after the last).
	CombineHTMLStrings func(parts []Part, placeholder string) string
	// MinifyHTML minifies the fused document. It must be idempotent on
	// already-minified input and must not reorder or remove placeholder
	// tokens.
	MinifyHTML func(html string, options MinifyOptions) (string, error)
	// MinifyCSS minifies a fused document that is a stylesheet rather than
	// markup, for CSS-tagged templates.
	MinifyCSS func(css string, options MinifyOptions) (string, error)
	// SplitHTMLByPlaceholder recovers the part texts by splitting the
	// minified document on the placeholder chosen in this same invocation.
	SplitHTMLByPlaceholder func(html, placeholder string) []string
}

// DefaultStrategy returns the default placeholder strategy backed by
// tdewolff/minify.
func DefaultStrategy() Strategy {
	return Strategy{
		GetPlaceholder:         GetPlaceholder,
		CombineHTMLStrings:     CombineHTMLStrings,
		MinifyHTML:             MinifyHTML,
		MinifyCSS:              MinifyCSS,
		SplitHTMLByPlaceholder: SplitHTMLByPlaceholder,
	}
}

// placeholderSuffix makes the token read as an at-rule-like call in CSS
// contexts, so conservative CSS minification keeps it intact. The final
// semicolon may still be dropped where a declaration ends; the split step
// accepts both spellings.
const placeholderSuffix = "();"

// GetPlaceholder mints a placeholder absent from every part text, extending
// the stem until no part contains the candidate. The semicolonless spelling
// is checked too, since the split step accepts it.
func GetPlaceholder(parts []Part) string {
	stem := "@TEMPLATE_EXPRESSION"
	for partsContain(parts, stem+"()") {
		stem += "_"
	}
	return stem + placeholderSuffix
}

func partsContain(parts []Part, s string) bool {
	for _, p := range parts {
		if strings.Contains(p.Text, s) {
			return true
		}
	}
	return false
}

// CombineHTMLStrings fuses part texts into a single document, one
// placeholder between each pair of consecutive parts.
func CombineHTMLStrings(parts []Part, placeholder string) string {
	texts := make([]string, len(parts))
	for i, p := range parts {
		texts[i] = p.Text
	}
	return strings.Join(texts, placeholder)
}

// MinifyHTML minifies a markup document with tdewolff/minify configured
// from options.
func MinifyHTML(doc string, options MinifyOptions) (string, error) {
	m := minify.New()
	m.Add("text/html", &html.Minifier{
		KeepComments:        options.KeepComments,
		KeepQuotes:          options.KeepQuotes,
		KeepWhitespace:      options.KeepWhitespace,
		KeepEndTags:         !options.RemoveEndTags,
		KeepDocumentTags:    !options.RemoveDocumentTags,
		KeepDefaultAttrVals: !options.RemoveDefaultAttrVals,
	})
	if options.MinifyCSS {
		m.Add("text/css", &css.Minifier{Precision: options.CSSPrecision})
	}
	return m.String("text/html", doc)
}

// MinifyCSS minifies a stylesheet document with tdewolff/minify.
func MinifyCSS(sheet string, options MinifyOptions) (string, error) {
	m := minify.New()
	m.Add("text/css", &css.Minifier{Precision: options.CSSPrecision})
	return m.String("text/css", sheet)
}

// SplitHTMLByPlaceholder splits the minified document on every occurrence
// of the placeholder. When the placeholder ends in a semicolon, occurrences
// with the semicolon dropped (a CSS minifier removes declaration-final
// semicolons) split too.
func SplitHTMLByPlaceholder(doc, placeholder string) []string {
	parts := strings.Split(doc, placeholder)
	if strings.HasSuffix(placeholder, ";") {
		bare := strings.TrimSuffix(placeholder, ";")
		split := make([]string, 0, len(parts))
		for _, p := range parts {
			split = append(split, strings.Split(p, bare)...)
		}
		parts = split
	}
	return parts
}
