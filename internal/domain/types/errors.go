package types

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateEntity is returned when a mutation would leave two entities that are the same.
	ErrDuplicateEntity = errors.New("duplicate entity")
	// ErrEntityNotFound is returned when no stored entity is equal to the one given.
	ErrEntityNotFound = errors.New("entity not found")
	// ErrInvalidArgument is returned when a required input is missing or malformed.
	ErrInvalidArgument = errors.New("invalid argument")
)

var (
	ErrDuplicateContact = fmt.Errorf("contact: %w", ErrDuplicateEntity)
	ErrContactNotFound  = fmt.Errorf("contact: %w", ErrEntityNotFound)
	ErrDuplicateTrip    = fmt.Errorf("trip: %w", ErrDuplicateEntity)
	ErrTripNotFound     = fmt.Errorf("trip: %w", ErrEntityNotFound)
)

// FieldError reports a value that failed validation for a named field.
type FieldError struct {
	Field      string
	Value      string
	Constraint string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Constraint)
}

// Unwrap lets errors.Is match ErrInvalidArgument.
func (e *FieldError) Unwrap() error { return ErrInvalidArgument }
