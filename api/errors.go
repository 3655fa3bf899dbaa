// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the largering
// library.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrOutOfRange           = fmt.Errorf("ring index out of range")
	ErrInvalidConfiguration = fmt.Errorf("invalid ring configuration")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeOutOfRange
	ErrCodeInvalidConfiguration
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the code to its sentinel so errors.Is works on wrapped
// structured errors.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeOutOfRange:
		return ErrOutOfRange
	case ErrCodeInvalidConfiguration:
		return ErrInvalidConfiguration
	default:
		return nil
	}
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
