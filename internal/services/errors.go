package services

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("no records found for this number")
	ErrResolution         = errors.New("lookup failed")
	ErrNumberTaken        = errors.New("user with this number already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError is a missing or empty required input. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func required(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// resolutionError wraps a store failure. The cause is kept for logging but
// never shown to callers.
func resolutionError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrResolution, op, err)
}
