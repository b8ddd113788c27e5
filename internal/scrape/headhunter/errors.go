package headhunter

import (
	"errors"
	"fmt"
)

// ErrRequestFailed matches every *RequestFailure via errors.Is.
var ErrRequestFailed = errors.New("hh request failed")

// RequestFailure is returned when the API answers a page with a non-2xx status.
type RequestFailure struct {
	StatusCode int
	Status     string
	Page       int
	Body       string // first bytes of the response, for diagnostics
}

func (e *RequestFailure) Error() string {
	return fmt.Sprintf("hh request failed: status %d (page %d)", e.StatusCode, e.Page)
}

func (e *RequestFailure) Is(target error) bool { return target == ErrRequestFailed }
