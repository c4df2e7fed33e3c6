// Package position converts between Go's byte-based string offsets and the
// UTF-16 code unit columns used by the source map format.
package position

import (
	"unicode/utf16"
	"unicode/utf8"
)

// ByteOffsetToUTF16 converts a byte offset in s to a UTF-16 code unit
// offset. Go strings are UTF-8 byte sequences, but source map columns count
// UTF-16 code units, so characters above U+FFFF count as 2.
func ByteOffsetToUTF16(s string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset > len(s) {
		byteOffset = len(s)
	}

	utf16Count := 0
	currentOffset := 0

	// Iterate through runes without slicing to avoid partial rune issues
	for currentOffset < byteOffset {
		r, size := utf8.DecodeRuneInString(s[currentOffset:])
		if r == utf8.RuneError && size == 0 {
			break // End of string
		}

		// Stop if decoding this rune would cross the target byteOffset
		if currentOffset+size > byteOffset {
			break
		}

		utf16Count += utf16.RuneLen(r)

		currentOffset += size
	}
	return utf16Count
}

// RuneLenUTF16 returns the width of r in UTF-16 code units (1 or 2).
// Invalid runes count as 1.
func RuneLenUTF16(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}
