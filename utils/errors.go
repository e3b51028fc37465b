// utils/errors.go
package utils

import (
	"errors"
	"strings"
)

// Caller errors. They map to 400 responses and are never logged as faults.
var (
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidDate      = errors.New("invalid date format")
	ErrInvalidTime      = errors.New("invalid time format")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrMalformedPayload = errors.New("malformed JSON payload")
)

// ValidationError lists every required field that was absent or blank.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrMissingField
}
