package handlers

import (
	"github.com/Trkcnl/twacktwack/internal/validation"
)

// validationErrs builds a field-keyed validation error the way the services do.
func validationErrs(fields map[string]string) error {
	errs := validation.New()
	for field, msg := range fields {
		errs.Add(field, msg)
	}
	return errs.Err()
}
