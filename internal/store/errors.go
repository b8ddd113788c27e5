package store

import (
	"errors"
	"fmt"
)

// ErrNotFound means no vacancies file has been written yet.
var ErrNotFound = errors.New("vacancies file not found")

// ParseError is returned when the file exists but is not a JSON array of objects.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
