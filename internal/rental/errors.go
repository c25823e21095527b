package rental

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCarNotFound        = errors.New("car not found")
	ErrMalformedInput     = errors.New("malformed input")
	ErrReferenceNotFound  = errors.New("referenced user or car not found")
	ErrInvalidDateRange   = errors.New("invalid date range")
	ErrPriceMismatch      = errors.New("total_price does not match the computed price")
)

// ValidationError lists the input fields that failed validation, keyed by their
// wire name. It matches ErrMalformedInput with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "malformed input: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrMalformedInput
}
