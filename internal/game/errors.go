package game

import (
	"errors"
	"fmt"
)

// ErrInvariantViolation marks an engine bug, such as a delta list that does
// not match the table size. It is surfaced to the caller, never recovered.
var ErrInvariantViolation = errors.New("invariant violation")

// ValidationError rejects an outcome or action whose inputs are out of range.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
