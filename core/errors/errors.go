// Package errors provides standardized error types and helpers for speciesgen.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupported indicates an unsupported operation or format
	ErrUnsupported = errors.New("unsupported")
)

// DecodeError represents a failure to decode a fixed-width source file.
// It is returned when the file itself cannot be read; individual malformed
// rows never produce a DecodeError.
type DecodeError struct {
	Layout string // Layout name (e.g., "ame2020", "nubase2020")
	Path   string // File path being decoded
	Err    error  // Underlying error
}

func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to decode %s file %s: %v", e.Layout, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to decode %s input: %v", e.Layout, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing or deserialization error
type ParseError struct {
	Format  string // Format being parsed (e.g., "decay modes", "manifest")
	Value   string // Offending value, if short enough to be useful
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("failed to parse %s %q: %s", e.Format, e.Value, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "open")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// CollisionError is returned by the emitter when two merged rows map to the
// same declaration identifier. This indicates the upstream deduplication
// failed and the run must not silently overwrite a table entry.
type CollisionError struct {
	Key string // The colliding "Symbol-A" key
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("duplicate species identifier: %s", e.Key)
}

func (e *CollisionError) Unwrap() error {
	return ErrInvalidInput
}

// Is reports whether target matches err, following wrapped errors.
// Re-exported so callers do not need to import both packages.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain matching target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
