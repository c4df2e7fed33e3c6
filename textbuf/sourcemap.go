package textbuf

import (
	"strings"

	"github.com/arthurevans/minify-html-literals/internal/position"
)

// SourceMap is a v3 source map correlating positions in the materialized
// text back to the pristine snapshot.
type SourceMap struct {
	Version        int      `json:"version"`
	File           string   `json:"file"`
	SourceRoot     string   `json:"sourceRoot,omitempty"`
	Sources        []string `json:"sources"`
	SourcesContent []string `json:"sourcesContent,omitempty"`
	Names          []string `json:"names"`
	Mappings       string   `json:"mappings"`
}

// GenerateMapOptions controls map generation.
type GenerateMapOptions struct {
	// File is the name recorded in the map's "file" field, conventionally
	// "<source>.map".
	File string
	// Source is the logical name of the input file.
	Source string
	// IncludeContent embeds the pristine snapshot in sourcesContent.
	IncludeContent bool
	// Hires emits a mapping segment for every retained character instead of
	// one per line, giving column-accurate positions inside unchanged spans.
	Hires bool
}

// GenerateMap builds a v3 source map for the buffer's current edit set.
// Retained spans map back to their original positions; replacement text maps
// to the start of the range it overwrote.
func (b *Buffer) GenerateMap(o GenerateMapOptions) *SourceMap {
	lines := lineStarts(b.source)
	var mb mappingsBuilder

	genLine, genCol := 0, 0
	pos := uint(0)
	for _, e := range b.edits {
		genLine, genCol = mb.retained(b.source, lines, pos, e.start, genLine, genCol, o.Hires)
		genLine, genCol = mb.replaced(b.source, lines, e.start, e.replacement, genLine, genCol)
		pos = e.end
	}
	mb.retained(b.source, lines, pos, uint(len(b.source)), genLine, genCol, o.Hires)

	m := &SourceMap{
		Version:  3,
		File:     o.File,
		Sources:  []string{o.Source},
		Names:    []string{},
		Mappings: mb.String(),
	}
	if o.IncludeContent {
		m.SourcesContent = []string{b.source}
	}
	return m
}

// lineStarts returns the byte offset of the start of each line in s.
func lineStarts(s string) []uint {
	starts := []uint{0}
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			starts = append(starts, uint(i)+1)
		}
	}
	return starts
}

// positionAt converts a byte offset into a 0-based line and a column in
// UTF-16 code units, as the source map format counts columns.
func positionAt(source string, lines []uint, offset uint) (line, col int) {
	lo, hi := 0, len(lines)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if lines[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo, position.ByteOffsetToUTF16(source[lines[lo]:], int(offset-lines[lo]))
}

// retained walks an unchanged snapshot span [from, to), emitting mapping
// segments and advancing the generated position.
func (mb *mappingsBuilder) retained(source string, lines []uint, from, to uint, genLine, genCol int, hires bool) (int, int) {
	pending := true
	for i, r := range source[from:to] {
		if hires || pending {
			srcLine, srcCol := positionAt(source, lines, from+uint(i))
			mb.add(genLine, genCol, srcLine, srcCol)
			pending = false
		}
		if r == '\n' {
			genLine++
			genCol = 0
			pending = true
		} else {
			genCol += position.RuneLenUTF16(r)
		}
	}
	return genLine, genCol
}

// replaced emits segments for replacement text, all pointing at the start of
// the overwritten range, and advances the generated position.
func (mb *mappingsBuilder) replaced(source string, lines []uint, origStart uint, replacement string, genLine, genCol int) (int, int) {
	if replacement == "" {
		return genLine, genCol
	}
	srcLine, srcCol := positionAt(source, lines, origStart)
	mb.add(genLine, genCol, srcLine, srcCol)
	for i, r := range replacement {
		if r == '\n' {
			genLine++
			genCol = 0
			if i+1 < len(replacement) {
				mb.add(genLine, genCol, srcLine, srcCol)
			}
		} else {
			genCol += position.RuneLenUTF16(r)
		}
	}
	return genLine, genCol
}

// mappingsBuilder accumulates the semicolon/comma delimited, delta-encoded
// base64 VLQ "mappings" field.
type mappingsBuilder struct {
	buf         strings.Builder
	line        int
	firstInLine bool

	prevGenCol  int
	prevSrcIdx  int
	prevSrcLine int
	prevSrcCol  int
}

func (mb *mappingsBuilder) add(genLine, genCol, srcLine, srcCol int) {
	for mb.line < genLine {
		mb.buf.WriteByte(';')
		mb.line++
		mb.prevGenCol = 0
		mb.firstInLine = true
	}
	if mb.buf.Len() == 0 {
		mb.firstInLine = true
	}
	if !mb.firstInLine {
		mb.buf.WriteByte(',')
	}
	mb.firstInLine = false

	writeVLQ(&mb.buf, genCol-mb.prevGenCol)
	writeVLQ(&mb.buf, 0-mb.prevSrcIdx)
	writeVLQ(&mb.buf, srcLine-mb.prevSrcLine)
	writeVLQ(&mb.buf, srcCol-mb.prevSrcCol)
	mb.prevGenCol = genCol
	mb.prevSrcIdx = 0
	mb.prevSrcLine = srcLine
	mb.prevSrcCol = srcCol
}

func (mb *mappingsBuilder) String() string {
	return mb.buf.String()
}

const base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// writeVLQ appends one signed value in base64 VLQ form: the sign occupies
// the lowest bit, then 5-bit groups from least significant, each group's
// sixth bit flagging continuation.
func writeVLQ(sb *strings.Builder, value int) {
	v := uint(value) << 1
	if value < 0 {
		v = uint(-value)<<1 | 1
	}
	for {
		digit := v & 0x1f
		v >>= 5
		if v > 0 {
			digit |= 0x20
		}
		sb.WriteByte(base64Chars[digit])
		if v == 0 {
			break
		}
	}
}
