// Package errors provides structured error types for mapforge.
//
// Error codes separate the three failure classes of the conversion
// pipeline:
//
//   - INVALID_*: a single map file line (or a request option) violates the
//     grammar. Never fatal at file scope; the line is dropped.
//   - FILE_NOT_FOUND / IO_ERROR: an input file cannot be opened or read, or
//     an output cannot be written. Fatal, aborts the run.
//   - RENDER_FAILED: the vector document fails validation or rasterization
//     fails. Fatal.
//
// Usage:
//
//	err := errors.New(errors.ErrCodeInvalidLine, "line has %d fields, want %d", n, want)
//	if errors.Is(err, errors.ErrCodeInvalidLine) {
//	    // drop the line
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes grouped by failure class.
const (
	// Grammar and option validation
	ErrCodeInvalidLine   Code = "INVALID_LINE"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidInput  Code = "INVALID_INPUT"

	// Input/output
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeIO           Code = "IO_ERROR"

	// Rendering
	ErrCodeRender Code = "RENDER_FAILED"

	// Unexpected internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err carries the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Fatal reports whether err should abort the run. Every code except
// ErrCodeInvalidLine is fatal; malformed lines are dropped at file scope.
func Fatal(err error) bool {
	return err != nil && !Is(err, ErrCodeInvalidLine)
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
