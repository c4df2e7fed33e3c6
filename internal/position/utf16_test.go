package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteOffsetToUTF16(t *testing.T) {
	tests := []struct {
		name        string
		s           string
		byteOffset  int
		expectUTF16 int
	}{
		{
			name:        "empty string",
			s:           "",
			byteOffset:  0,
			expectUTF16: 0,
		},
		{
			name:        "ASCII only",
			s:           "hello world",
			byteOffset:  5,
			expectUTF16: 5,
		},
		{
			name:        "ASCII - beyond end",
			s:           "hello",
			byteOffset:  100,
			expectUTF16: 5,
		},
		{
			name:        "emoji at start",
			s:           "👍 hello",
			byteOffset:  4, // After emoji (4 bytes)
			expectUTF16: 2, // Emoji is 2 UTF-16 units
		},
		{
			name:        "emoji in middle",
			s:           "hello 👍 world",
			byteOffset:  10, // After "hello 👍"
			expectUTF16: 8,  // 6 + 2
		},
		{
			name:        "CJK characters",
			s:           "颜色",
			byteOffset:  6,
			expectUTF16: 2,
		},
		{
			name:        "negative offset",
			s:           "hello",
			byteOffset:  -1,
			expectUTF16: 0,
		},
		{
			name:        "zero offset",
			s:           "hello",
			byteOffset:  0,
			expectUTF16: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByteOffsetToUTF16(tt.s, tt.byteOffset)
			assert.Equal(t, tt.expectUTF16, result)
		})
	}
}

func TestRuneLenUTF16(t *testing.T) {
	assert.Equal(t, 1, RuneLenUTF16('a'))
	assert.Equal(t, 1, RuneLenUTF16('颜'))
	assert.Equal(t, 2, RuneLenUTF16('👍'))
	assert.Equal(t, 1, RuneLenUTF16('�'))
}
