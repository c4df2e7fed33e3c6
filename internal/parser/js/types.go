package js

// Part is one literal-text segment of a template literal, between ${...}
// expression boundaries (or the template's backtick delimiters).
type Part struct {
	// Text is the raw source text of the segment, escape sequences intact.
	Text string
	// Start is the byte offset of the segment in the scanned source.
	Start uint
	// End is the byte offset one past the segment's last byte.
	End uint
}

// Template is one template literal occurrence found in source.
//
// A template always has at least one part; n parts imply n-1 expression
// holes, and the source of hole i is the bytes between part i's End and
// part i+1's Start (the "${...}" span, inclusive).
type Template struct {
	// Tag is the source text of the tag expression for tagged templates
	// (an identifier like "html", a member like "this.html", or a call like
	// "getHTML()"), or empty for an untagged literal.
	Tag string
	// Parts are the literal-text segments in source order.
	Parts []Part
	// Start is the byte offset of the template occurrence, including the
	// tag for tagged templates.
	Start uint
	// End is the byte offset one past the closing backtick.
	End uint
}
