// Package validation provides a small error-accumulating request validator.
package validation

import (
	"fmt"
	"strings"
)

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors aggregates every field failure from one validation pass. Handlers
// detect it with errors.As to map it to a client error response.
type Errors struct {
	Fields []FieldError
}

func (e *Errors) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return strings.Join(msgs, "; ")
}

type Validator struct {
	errors []FieldError
}

func New() *Validator {
	return &Validator{
		errors: make([]FieldError, 0),
	}
}

func (v *Validator) Valid() bool {
	return len(v.errors) == 0
}

func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{
		Field:   field,
		Message: message,
	})
}

func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Err returns nil when every check passed, otherwise the accumulated *Errors.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return &Errors{Fields: v.errors}
}
