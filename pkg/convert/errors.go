package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCategory is returned when a category name is not in the
	// registry.
	ErrUnknownCategory = errors.New("unknown conversion category")

	// ErrEmptyCategory signals that a category has no available entries.
	// This is a user-visible "nothing to offer" state, not a hard failure.
	ErrEmptyCategory = errors.New("no conversions available in this category")

	// ErrUnknownEntry is returned when an entry name is not in the registry.
	ErrUnknownEntry = errors.New("unknown conversion")
)

// ConversionError reports a failed conversion with a human-readable cause:
// malformed input, a missing optional dependency, or an underlying library
// error. It is local to a single Convert call and never fatal.
type ConversionError struct {
	Entry string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %q: %v", e.Entry, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// convErr builds a ConversionError with a formatted cause.
func convErr(entry, format string, args ...any) error {
	return &ConversionError{Entry: entry, Err: fmt.Errorf(format, args...)}
}
