package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("invalid input")
	ErrIO         = errors.New("i/o failure")
	ErrReadOnly   = errors.New("repository is in read-only mode")
)

// ValidationError describes a rejected input value.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Invalid builds a ValidationError for field.
func Invalid(field, value string, err error) error {
	return &ValidationError{Field: field, Value: value, Err: err}
}

// NotFound wraps ErrNotFound with the collection and id that were looked up.
func NotFound(collection string, id int) error {
	return fmt.Errorf("%s #%d: %w", collection, id, ErrNotFound)
}
