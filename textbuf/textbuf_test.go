package textbuf_test

import (
	"testing"

	"github.com/arthurevans/minify-html-literals/textbuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoEdits(t *testing.T) {
	b := textbuf.New("hello world")
	assert.Equal(t, "hello world", b.String())
	assert.False(t, b.Changed())
	assert.Equal(t, "hello world", b.Source())
}

func TestSingleOverwrite(t *testing.T) {
	b := textbuf.New("hello world")
	require.NoError(t, b.Overwrite(0, 5, "goodbye"))
	assert.Equal(t, "goodbye world", b.String())
	assert.True(t, b.Changed())
}

func TestOverwritesApplyInSourceOrderRegardlessOfStagingOrder(t *testing.T) {
	b := textbuf.New("aaa bbb ccc")
	require.NoError(t, b.Overwrite(8, 11, "C"))
	require.NoError(t, b.Overwrite(0, 3, "A"))
	assert.Equal(t, "A bbb C", b.String())
}

func TestOverwriteUsesPristineOffsets(t *testing.T) {
	// The first replacement is much shorter than the range it covers; the
	// second edit's offsets still address the original text.
	b := textbuf.New("0123456789")
	require.NoError(t, b.Overwrite(0, 5, "x"))
	require.NoError(t, b.Overwrite(5, 8, "y"))
	assert.Equal(t, "xy89", b.String())
}

func TestAdjacentRangesDoNotOverlap(t *testing.T) {
	b := textbuf.New("abcdef")
	require.NoError(t, b.Overwrite(0, 3, "x"))
	require.NoError(t, b.Overwrite(3, 6, "y"))
	assert.Equal(t, "xy", b.String())
}

func TestOverlapRejected(t *testing.T) {
	b := textbuf.New("abcdef")
	require.NoError(t, b.Overwrite(1, 4, "x"))

	assert.Error(t, b.Overwrite(3, 5, "y"), "tail overlap")
	assert.Error(t, b.Overwrite(0, 2, "y"), "head overlap")
	assert.Error(t, b.Overwrite(2, 3, "y"), "contained")
	assert.Error(t, b.Overwrite(0, 6, "y"), "containing")

	// The failed attempts must not have staged anything.
	assert.Equal(t, "axef", b.String())
}

func TestBadRangesRejected(t *testing.T) {
	b := textbuf.New("abc")
	assert.Error(t, b.Overwrite(2, 1, "x"), "inverted")
	assert.Error(t, b.Overwrite(0, 4, "x"), "past the end")
}

func TestChangedIgnoresIdenticalReplacement(t *testing.T) {
	b := textbuf.New("abc")
	require.NoError(t, b.Overwrite(0, 1, "a"))
	assert.False(t, b.Changed())
	require.NoError(t, b.Overwrite(1, 2, "X"))
	assert.True(t, b.Changed())
}
