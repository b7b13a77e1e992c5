package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrHasDependents = errors.New("has dependents")
)

// Authentication failures. All of them are ErrUnauthorized.
var (
	ErrNoCredential = fmt.Errorf("%w: no credential", ErrUnauthorized)
	ErrUnknownUser  = fmt.Errorf("%w: unknown user", ErrUnauthorized)
	ErrDeactivated  = fmt.Errorf("%w: account deactivated", ErrUnauthorized)
	ErrBadLogin     = fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
)

// ErrDuplicateSlug is returned when an article slug collides with another article.
var ErrDuplicateSlug = fmt.Errorf("%w: slug", ErrAlreadyExists)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// DependencyError reports that an entity cannot be removed because other
// records still reference it.
type DependencyError struct {
	Entity string
	Count  int
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s has %d dependent records", e.Entity, e.Count)
}

func (e *DependencyError) Unwrap() error { return ErrHasDependents }
