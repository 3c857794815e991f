package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Trkcnl/twacktwack/internal/validation"
)

func TestValidateProfile(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	adult := now.AddDate(-30, 0, 0)

	tests := []struct {
		name       string
		pname      string
		birthdate  time.Time
		heightCm   float64
		wantFields []string
	}{
		{
			name:      "valid",
			pname:     "Alice",
			birthdate: adult,
			heightCm:  172.5,
		},
		{
			name:       "empty name",
			pname:      "",
			birthdate:  adult,
			heightCm:   172.5,
			wantFields: []string{"name"},
		},
		{
			name:       "birthdate in the future",
			pname:      "Alice",
			birthdate:  now.AddDate(1, 0, 0),
			heightCm:   172.5,
			wantFields: []string{"birthdate"},
		},
		{
			name:       "too young",
			pname:      "Alice",
			birthdate:  now.AddDate(-15, 0, 0),
			heightCm:   172.5,
			wantFields: []string{"birthdate"},
		},
		{
			name:      "sixteen exactly",
			pname:     "Alice",
			birthdate: now.AddDate(-16, 0, -1),
			heightCm:  172.5,
		},
		{
			name:       "negative height",
			pname:      "Alice",
			birthdate:  adult,
			heightCm:   -1,
			wantFields: []string{"height_cm"},
		},
		{
			name:       "height above limit",
			pname:      "Alice",
			birthdate:  adult,
			heightCm:   300.5,
			wantFields: []string{"height_cm"},
		},
		{
			name:      "height at limit",
			pname:     "Alice",
			birthdate: adult,
			heightCm:  300,
		},
		{
			name:       "everything wrong",
			pname:      "",
			birthdate:  now.AddDate(1, 0, 0),
			heightCm:   -5,
			wantFields: []string{"name", "birthdate", "height_cm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile(tt.pname, tt.birthdate, tt.heightCm, now)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			errs, ok := validation.AsErrors(err)
			assert.True(t, ok)
			assert.Len(t, errs, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.NotEmpty(t, errs[field], "expected message for field %s", field)
			}
		})
	}
}

func TestUserProfileDB_Age(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	p := &UserProfileDB{Birthdate: time.Date(2000, 8, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, 26, p.Age(now))
}
