package minifyliterals_test

import (
	"errors"
	"testing"

	minifyliterals "github.com/arthurevans/minify-html-literals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsurePlaceholderValid(t *testing.T) {
	v := minifyliterals.DefaultValidator()

	assert.NoError(t, v.EnsurePlaceholderValid("@TEMPLATE_EXPRESSION();"))

	err := v.EnsurePlaceholderValid("")
	require.Error(t, err)
	var invalid *minifyliterals.InvalidPlaceholderError
	assert.ErrorAs(t, err, &invalid)
}

func TestEnsureHTMLPartsValid(t *testing.T) {
	v := minifyliterals.DefaultValidator()

	t.Run("matching counts pass", func(t *testing.T) {
		assert.NoError(t, v.EnsureHTMLPartsValid(parts("a", "b"), []string{"a", "b"}))
		assert.NoError(t, v.EnsureHTMLPartsValid(parts("a"), []string{"x"}))
	})

	t.Run("dropped hole fails", func(t *testing.T) {
		err := v.EnsureHTMLPartsValid(parts("a", "b"), []string{"ab"})
		require.Error(t, err)

		var mismatch *minifyliterals.PartCountMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, 2, mismatch.Expected)
		assert.Equal(t, 1, mismatch.Actual)
	})

	t.Run("duplicated hole fails", func(t *testing.T) {
		err := v.EnsureHTMLPartsValid(parts("a", "b"), []string{"a", "b", "c"})
		var mismatch *minifyliterals.PartCountMismatchError
		assert.ErrorAs(t, err, &mismatch)
	})
}

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, (&minifyliterals.InvalidPlaceholderError{}).Error(), "placeholder")

	err := &minifyliterals.PartCountMismatchError{Expected: 3, Actual: 2}
	assert.Contains(t, err.Error(), "3")
	assert.Contains(t, err.Error(), "2")
	assert.False(t, errors.Is(err, &minifyliterals.InvalidPlaceholderError{}))
}
