package converting

import (
	"errors"
	"fmt"
)

// ErrNoTextRepresentation is returned by Convert on converters whose output
// is binary. Callers must use WriteFile instead.
var ErrNoTextRepresentation = errors.New("format has no text representation")

// ConversionError represents a failure while producing or writing an output
// document, including external browser failures and timeouts.
type ConversionError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s conversion failed: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s conversion failed: %s", e.Format, e.Message)
}

func (e *ConversionError) Unwrap() error {
	return e.Cause
}
