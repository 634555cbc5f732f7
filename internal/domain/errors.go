package domain

import (
	"errors"
	"sort"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Concrete failures are reported as *ValidationError, which unwraps to it.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// NonFieldErrorsKey collects failures that span more than one field.
const NonFieldErrorsKey = "non_field_errors"

// ValidationError reports every rejected field of a record, one or more
// messages per field. It is what a client needs to correct and resubmit.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError creates a ValidationError holding a single field failure.
func NewValidationError(field string, reason error) *ValidationError {
	ve := &ValidationError{}
	ve.Add(field, reason)
	return ve
}

// Add records reason against field.
func (e *ValidationError) Add(field string, reason error) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], reason.Error())
}

// Has reports whether field has at least one recorded failure.
func (e *ValidationError) Has(field string) bool {
	return e != nil && len(e.Fields[field]) > 0
}

// Empty reports whether no failures have been recorded.
func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

// Err returns e as an error, or nil when nothing was recorded. It avoids the
// typed-nil trap of returning a nil *ValidationError through an error interface.
func (e *ValidationError) Err() error {
	if e.Empty() {
		return nil
	}
	return e
}

// Error implements the error interface with a stable, field-sorted summary.
func (e *ValidationError) Error() string {
	if e.Empty() {
		return ErrValidation.Error()
	}

	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e.Fields[f], ", "))
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap allows errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
