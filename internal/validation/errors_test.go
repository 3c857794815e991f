package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AddAndErr(t *testing.T) {
	errs := New()
	assert.True(t, errs.Empty())
	assert.NoError(t, errs.Err())

	errs.Add("name", "Name must not be empty.")
	errs.Addf("reps", "Reps must be between 0 and %d.", 100)
	errs.Add("name", "Name is too long.")

	assert.False(t, errs.Empty())
	assert.Error(t, errs.Err())
	assert.Equal(t, []string{"Name must not be empty.", "Name is too long."}, errs["name"])
	assert.Equal(t, []string{"Reps must be between 0 and 100."}, errs["reps"])
}

func TestErrors_ErrorMessageSorted(t *testing.T) {
	errs := New()
	errs.Add("b", "second")
	errs.Add("a", "first")

	assert.Equal(t, "validation failed: a: first, b: second", errs.Error())
}

func TestAsErrors(t *testing.T) {
	errs := New()
	errs.Add(NonFieldErrors, "End time must be after begin time.")

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"direct", errs.Err(), true},
		{"wrapped", fmt.Errorf("update workout: %w", errs.Err()), true},
		{"plain error", errors.New("db failure"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsErrors(tt.err)
			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, errs, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}
