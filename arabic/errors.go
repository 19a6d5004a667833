package arabic

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel for malformed roots, patterns and rules.
var ErrValidation = errors.New("validation error")

// ValidationError describes why a piece of input was rejected.
type ValidationError struct {
	Field  string // "root", "pattern", "rule", ...
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Input, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for one field.
func NewValidationError(field, input, reason string) *ValidationError {
	return &ValidationError{Field: field, Input: input, Reason: reason}
}

// Reason extracts the human-readable reason from a validation error chain.
// For other errors it returns err.Error(), and "" for nil.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Reason
	}
	return err.Error()
}

// LineError records one rejected line of a bulk load.
type LineError struct {
	Line int // 1-based position in the loaded sequence
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
