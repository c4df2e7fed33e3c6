package minifyliterals

// Validator enforces the structural invariants that make a minified template
// trustworthy. Both checks are fatal for the whole run when they fail.
// Custom validators plug in through Options.Validate; disabling validation
// removes this safety net and is the caller's explicit choice.
type Validator interface {
	// EnsurePlaceholderValid rejects placeholders that cannot be safely
	// embedded and searched for.
	EnsurePlaceholderValid(placeholder string) error
	// EnsureHTMLPartsValid rejects minification results whose part count
	// differs from the original template's, which would mean an expression
	// hole was dropped, duplicated, or merged.
	EnsureHTMLPartsValid(parts []Part, minifiedParts []string) error
}

// DefaultValidator returns the standard checks described above.
func DefaultValidator() Validator {
	return defaultValidator{}
}

type defaultValidator struct{}

func (defaultValidator) EnsurePlaceholderValid(placeholder string) error {
	if placeholder == "" {
		return &InvalidPlaceholderError{Placeholder: placeholder}
	}
	return nil
}

func (defaultValidator) EnsureHTMLPartsValid(parts []Part, minifiedParts []string) error {
	if len(minifiedParts) != len(parts) {
		return &PartCountMismatchError{Expected: len(parts), Actual: len(minifiedParts)}
	}
	return nil
}
