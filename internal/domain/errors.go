package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrValidation      = errors.New("validation error")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidStatus   = errors.New("invalid case status")
	ErrInvalidLanguage = errors.New("invalid language")
	ErrMalformedCase   = errors.New("malformed case")
)

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

// MalformedCaseError reports a persisted or seeded case record that is
// missing required fields. Aggregations skip such records instead of failing.
type MalformedCaseError struct {
	CaseNumber string
	Fields     []string
}

func (e *MalformedCaseError) Error() string {
	ref := e.CaseNumber
	if ref == "" {
		ref = "<no case number>"
	}
	return fmt.Sprintf("malformed case %s: bad fields %s", ref, strings.Join(e.Fields, ", "))
}

func (e *MalformedCaseError) Unwrap() error { return ErrMalformedCase }
