package minifyliterals

import "fmt"

// InvalidPlaceholderError reports a placeholder that cannot be safely
// embedded or searched for. An empty placeholder would make the split step
// behave unpredictably, so it is rejected before any markup is touched.
type InvalidPlaceholderError struct {
	Placeholder string
}

func (e *InvalidPlaceholderError) Error() string {
	return "minifyliterals: invalid placeholder: must be a non-empty string"
}

// PartCountMismatchError reports that the number of expression holes changed
// across minification: an expression was dropped, duplicated, or merged into
// surrounding markup. This is the invariant that turns silent corruption
// into a hard failure.
type PartCountMismatchError struct {
	// Expected is the part count of the original template.
	Expected int
	// Actual is the part count recovered after minification.
	Actual int
}

func (e *PartCountMismatchError) Error() string {
	return fmt.Sprintf("minifyliterals: part count changed across minification: expected %d, got %d", e.Expected, e.Actual)
}
