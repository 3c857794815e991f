// Package validation defines the field-keyed error shape surfaced to clients
// as 400 responses.
package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// NonFieldErrors is the key used for errors that do not belong to a single
// field, such as cross-field rules.
const NonFieldErrors = "non_field_errors"

// Errors maps a field name to the list of messages recorded against it.
type Errors map[string][]string

// New returns an empty error map ready for Add calls.
func New() Errors {
	return Errors{}
}

// Add records a message against a field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Addf records a formatted message against a field.
func (e Errors) Addf(field, format string, args ...any) {
	e.Add(field, fmt.Sprintf(format, args...))
}

// Empty reports whether no messages have been recorded.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// Err returns the map as an error, or nil if nothing was recorded.
func (e Errors) Err() error {
	if e.Empty() {
		return nil
	}
	return e
}

// Error implements the error interface.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e[field], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// AsErrors unwraps err into an Errors map if it carries one.
func AsErrors(err error) (Errors, bool) {
	var verr Errors
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
