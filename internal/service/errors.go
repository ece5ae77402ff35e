package service

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a referenced entity that does not exist. Wrapped with
// the entity name, e.g. NotFound("experience").
var ErrNotFound = errors.New("not found")

// ErrForbidden marks an operation on a resource the acting user does not own.
var ErrForbidden = errors.New("forbidden")

// NotFound wraps ErrNotFound with the missing entity's name.
func NotFound(entity string) error {
	return fmt.Errorf("%s: %w", entity, ErrNotFound)
}

// ValidationError reports malformed or missing input. It is always returned
// before any state is mutated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError for the given field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
