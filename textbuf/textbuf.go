// Package textbuf provides a scoped mutable text buffer: an arena of pending
// non-overlapping range overwrites staged against an immutable snapshot of
// the input, materialized in a single pass. Because every overwrite is
// addressed with offsets into the pristine snapshot, edits stay valid no
// matter how much shorter (or longer) other edits' replacement text is.
package textbuf

import (
	"fmt"
	"sort"
	"strings"
)

// edit is one staged overwrite of [start, end) in the snapshot.
type edit struct {
	start       uint
	end         uint
	replacement string
}

// Buffer stages range overwrites against an immutable source snapshot.
// The zero value is not usable; create one with New.
type Buffer struct {
	source string
	edits  []edit // sorted by start, pairwise disjoint
}

// New creates a Buffer over a snapshot of source.
func New(source string) *Buffer {
	return &Buffer{source: source}
}

// Source returns the pristine snapshot the buffer was created over.
func (b *Buffer) Source() string {
	return b.source
}

// Overwrite stages a replacement of the bytes in [start, end) of the
// pristine snapshot. Ranges are half-open and must lie within the snapshot.
// Overlapping a previously staged overwrite is an error; offsets refer to
// the snapshot, never to the output of other edits.
func (b *Buffer) Overwrite(start, end uint, replacement string) error {
	if start > end {
		return fmt.Errorf("textbuf: inverted range [%d, %d)", start, end)
	}
	if end > uint(len(b.source)) {
		return fmt.Errorf("textbuf: range [%d, %d) exceeds source length %d", start, end, len(b.source))
	}

	// Find the insertion point that keeps edits sorted by start.
	i := sort.Search(len(b.edits), func(i int) bool {
		return b.edits[i].start >= start
	})
	if i > 0 && b.edits[i-1].end > start {
		prev := b.edits[i-1]
		return fmt.Errorf("textbuf: range [%d, %d) overlaps staged edit [%d, %d)", start, end, prev.start, prev.end)
	}
	if i < len(b.edits) && b.edits[i].start < end {
		next := b.edits[i]
		return fmt.Errorf("textbuf: range [%d, %d) overlaps staged edit [%d, %d)", start, end, next.start, next.end)
	}

	b.edits = append(b.edits, edit{})
	copy(b.edits[i+1:], b.edits[i:])
	b.edits[i] = edit{start: start, end: end, replacement: replacement}
	return nil
}

// Changed reports whether materializing now would produce text that differs
// from the snapshot.
func (b *Buffer) Changed() bool {
	for _, e := range b.edits {
		if b.source[e.start:e.end] != e.replacement {
			return true
		}
	}
	return false
}

// String materializes the buffer: retained snapshot spans interleaved with
// staged replacements, in one pass.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(len(b.source))
	pos := uint(0)
	for _, e := range b.edits {
		sb.WriteString(b.source[pos:e.start])
		sb.WriteString(e.replacement)
		pos = e.end
	}
	sb.WriteString(b.source[pos:])
	return sb.String()
}
