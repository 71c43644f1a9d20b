// Package errors provides structured errors with machine-readable codes.
//
// Every failure surfaced by the rendering pipeline carries a Code so the
// CLI can pick exit behavior and the HTTP server can pick a status without
// string matching:
//
//	err := errors.New(errors.ErrCodeInvalidGeometry, "unsupported geometry kind: %T", geom)
//	if errors.Is(err, errors.ErrCodeInvalidGeometry) {
//	    ...
//	}
//
// Wrapping preserves the cause for the standard errors.Is/As chain:
//
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "encode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	// Input validation failures.
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidGeometry Code = "INVALID_GEOMETRY"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidColormap Code = "INVALID_COLORMAP"
	ErrCodeInvalidRoute    Code = "INVALID_ROUTE"
	ErrCodeInvalidGraph    Code = "INVALID_GRAPH"
	ErrCodeAmbiguousInput  Code = "AMBIGUOUS_INPUT"

	// Required data absent from the graph or its extent.
	ErrCodeMissingEdge   Code = "MISSING_EDGE"
	ErrCodeMissingExtent Code = "MISSING_EXTENT"

	// Feature disabled by configuration.
	ErrCodeUnsupportedCapability Code = "UNSUPPORTED_CAPABILITY"

	// Lookups that came up empty.
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error pairs a code with a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the cause to the standard errors chain.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error around an existing cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err (or anything it wraps) carries the given code.
func Is(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// GetCode returns err's code, or the empty string for foreign errors.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix, falling back to
// Error() for foreign errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
