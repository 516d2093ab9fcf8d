// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. These errors should be used by use cases
// and mapped to appropriate HTTP status codes by handlers.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (e.g., duplicate key).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal indicates a defect inside the service. It is never caused by
	// caller input and its details are not exposed to clients.
	ErrInternal = errors.New("internal error")
)

// Error is a domain error carrying a machine-readable code.
//
// The code travels to API clients in the "code" field of error responses, while
// the wrapped kind (one of the sentinels above) decides the HTTP status.
type Error struct {
	kind    error
	code    string
	message string
}

// NewCoded creates a coded domain error of the given kind.
func NewCoded(kind error, code, message string) *Error {
	return &Error{kind: kind, code: code, message: message}
}

// Error returns the human-readable message.
func (e *Error) Error() string {
	return e.message
}

// Code returns the machine-readable code.
func (e *Error) Code() string {
	return e.code
}

// Unwrap exposes the generic kind so errors.Is(err, ErrInvalidInput) holds.
func (e *Error) Unwrap() error {
	return e.kind
}

// CodeOf returns the code of the first coded error in err's tree, or "".
func CodeOf(err error) string {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.code
	}
	return ""
}

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
