// Package errors provides the coded failures that end a madlibs round.
//
// Callers match on the kind of failure with errors.Is against the sentinels:
//
//	if errors.Is(err, errors.ErrInvalidGenre) {
//	    ...
//	}
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code represents a machine-readable error code.
type Code string

const (
	CodeDataUnavailable  Code = "DATA_UNAVAILABLE"
	CodeMalformedCatalog Code = "MALFORMED_CATALOG"
	CodeInvalidGenre     Code = "INVALID_GENRE"
	CodeIOFailure        Code = "IO_FAILURE"
)

// Error is a failure with a code, message and optional cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		cause:   err,
	}
}

// Sentinel errors for use with errors.Is().
var (
	ErrDataUnavailable  = &Error{Code: CodeDataUnavailable, Message: "story data unavailable"}
	ErrMalformedCatalog = &Error{Code: CodeMalformedCatalog, Message: "malformed story catalog"}
	ErrInvalidGenre     = &Error{Code: CodeInvalidGenre, Message: "invalid genre"}
	ErrIOFailure        = &Error{Code: CodeIOFailure, Message: "console i/o failure"}
)

// DataUnavailablef creates a data unavailable error with formatted message.
func DataUnavailablef(format string, args ...any) *Error {
	return &Error{Code: CodeDataUnavailable, Message: fmt.Sprintf(format, args...)}
}

// MalformedCatalogf creates a malformed catalog error with formatted message.
func MalformedCatalogf(format string, args ...any) *Error {
	return &Error{Code: CodeMalformedCatalog, Message: fmt.Sprintf(format, args...)}
}

// InvalidGenre creates an invalid genre error.
func InvalidGenre(msg string) *Error {
	return &Error{Code: CodeInvalidGenre, Message: msg}
}

// IOFailure creates a console i/o error.
func IOFailure(msg string) *Error {
	return &Error{Code: CodeIOFailure, Message: msg}
}

// CodeOf returns the code carried by err, or "" when err is not an *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
