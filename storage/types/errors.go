package types

import (
	"errors"
	"fmt"
)

// ErrEmptyResult is returned when an operation yields (or is given) zero rates
var ErrEmptyResult = errors.New("no exchange rates available")

// RemoteError is returned when the rate API responds with a non-success status
type RemoteError struct {
	Status     string
	StatusCode int
}

func (e *RemoteError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("invalid status code received: %s", e.Status)
	}

	return fmt.Sprintf("invalid status code received: %d", e.StatusCode)
}

// ParseError is returned when the rate API response has an unexpected shape
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError is returned for invalid user-supplied input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error for the given input field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
