// Package minifyliterals rewrites program source in place: it finds template
// literals that embed markup, minifies the markup, and leaves every embedded
// expression untouched, producing the rewritten source and an optional v3
// source map.
package minifyliterals

// Part is one literal-text segment of a template literal. Consecutive parts
// are separated by exactly one expression hole in the original source.
type Part struct {
	// Text is the raw source text of the segment.
	Text string
	// Start is the byte offset of the segment in the original source.
	Start uint
	// End is the byte offset one past the segment's last byte.
	End uint
}

// Template is one template literal occurrence in source. A template always
// has at least one part; n parts imply n-1 expression holes. The source of
// hole i is the bytes between part i's End and part i+1's Start, and it is
// preserved byte-for-byte by the rewriter.
type Template struct {
	// Tag is the source text of the tag expression ("html", "this.html",
	// "getHTML()", ...), or empty for an untagged literal.
	Tag string
	// Parts are the literal-text segments in source order.
	Parts []Part
	// Start is the byte offset of the occurrence, including the tag.
	Start uint
	// End is the byte offset one past the closing delimiter.
	End uint
}

// expression returns the pristine source text of hole i, including the
// "${" and "}" delimiters.
func (t *Template) expression(source string, i int) string {
	return source[t.Parts[i].End:t.Parts[i+1].Start]
}
