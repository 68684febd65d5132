// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeRedefinition indicates a conflicting redefinition of a dimension
	TypeRedefinition Type = "REDEFINITION_CONFLICT"

	// TypeNotFound indicates a dimension not present in the catalog
	TypeNotFound Type = "NOT_FOUND"

	// TypeInvalidExponent indicates a malformed rational exponent
	TypeInvalidExponent Type = "INVALID_EXPONENT"

	// TypeInvalidDefinition indicates an invalid dimension definition
	TypeInvalidDefinition Type = "INVALID_DEFINITION"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// Redefinition creates a redefinition conflict error
func Redefinition(name string) *Error {
	return Newf(TypeRedefinition, "conflicting redefinition of dimension: %s", name)
}

// NotFound creates a not found error
func NotFound(kind, name string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", kind, name)
}

// InvalidExponent creates an invalid exponent error
func InvalidExponent(message string) *Error {
	return New(TypeInvalidExponent, message)
}

// InvalidDefinition creates an invalid definition error
func InvalidDefinition(message string) *Error {
	return New(TypeInvalidDefinition, message)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
