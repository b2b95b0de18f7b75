// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when user-supplied input fails validation.
	// The concrete error is usually an *InvalidInputError carrying the
	// full list of field messages.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is malformed.
	ErrInvalidID = errors.New("invalid ID")
)

// InvalidInputError aggregates every validation failure for one input
// object into an ordered list of human-readable messages. It is never a
// bare boolean: callers surface the whole list to the client.
type InvalidInputError struct {
	Messages []string
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	if len(e.Messages) == 0 {
		return "invalid input"
	}
	return "invalid input: " + strings.Join(e.Messages, "; ")
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *InvalidInputError) Unwrap() error {
	return ErrValidation
}

// NewInvalidInputError creates an InvalidInputError from the given
// messages. Returns nil when the list is empty so validators can return
// their accumulated result directly.
func NewInvalidInputError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &InvalidInputError{Messages: messages}
}
