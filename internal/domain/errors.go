package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers. Handlers match on these with
// errors.Is to pick a transport status; payloads travel in the typed errors
// below.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrValidation      = errors.New("validation error")
	ErrVersionRequired = errors.New("version not provided")
	ErrVersionConflict = errors.New("version conflict")
)

// NotFoundError reports a missing entity by kind and id.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d: not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError creates a NotFoundError for the given entity kind and id.
func NewNotFoundError(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// VersionConflictError reports an optimistic-lock failure: the caller supplied
// a version token that no longer matches the stored row.
type VersionConflictError struct {
	Expected int64
	Found    int64
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("expected version %d, found %d", e.Expected, e.Found)
}

func (e *VersionConflictError) Unwrap() error { return ErrVersionConflict }

// NewVersionConflictError creates a VersionConflictError.
func NewVersionConflictError(expected, found int64) *VersionConflictError {
	return &VersionConflictError{Expected: expected, Found: found}
}

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
