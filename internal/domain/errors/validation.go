package errors

import (
	"net/http"
	"sort"
	"strings"
)

// ValidationError rejects an input or business rule violation. It carries a
// field -> message map so the caller sees every problem at once; the payload
// validator collects all field errors before raising, while gate checks
// (capacity, route time) raise a single-field error and stop the pipeline.
type ValidationError struct {
	fields map[string]string
}

// NewValidationError creates a validation error from a field -> message map.
func NewValidationError(fields map[string]string) *ValidationError {
	copied := make(map[string]string, len(fields))
	for field, message := range fields {
		copied[field] = message
	}

	return &ValidationError{fields: copied}
}

// NewFieldError creates a validation error for a single field.
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{fields: map[string]string{field: message}}
}

// Error implements the error interface. Field messages are joined in field
// order for deterministic output.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.fields))
	for _, field := range e.sortedFields() {
		parts = append(parts, field+": "+e.fields[field])
	}

	return strings.Join(parts, "; ")
}

// Fields returns a copy of the field -> message map.
func (e *ValidationError) Fields() map[string]string {
	copied := make(map[string]string, len(e.fields))
	for field, message := range e.fields {
		copied[field] = message
	}

	return copied
}

// Has reports whether the error carries a message for the given field.
func (e *ValidationError) Has(field string) bool {
	_, ok := e.fields[field]

	return ok
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "validation failed"
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return e.Error()
}

func (e *ValidationError) sortedFields() []string {
	fields := make([]string, 0, len(e.fields))
	for field := range e.fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	return fields
}
