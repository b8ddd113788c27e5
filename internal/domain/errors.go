package domain

import (
	"errors"
	"fmt"
)

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

const (
	msgNonEmpty      = "value must be a non-empty string"
	msgSnippetObject = "snippet must be an object"
	msgSalaryObject  = "salary_range must be an object or null"
)

// ValidationError reports malformed input to vacancy construction.
type ValidationError struct {
	Field string
	Msg   string
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
