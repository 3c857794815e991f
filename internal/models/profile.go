package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Trkcnl/twacktwack/internal/validation"
)

// Profile bounds.
const (
	MinAgeYears = 16
	MaxHeightCm = 300
)

// UserProfileDB represents a user profile row in the database
type UserProfileDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owning identity, one-to-one
	Name      string    `json:"name" db:"name"`             // Display name
	Birthdate time.Time `json:"birthdate" db:"birthdate"`   // Date of birth
	HeightCm  float64   `json:"height_cm" db:"height_cm"`   // Height in centimeters
	Bio       string    `json:"bio" db:"bio"`               // Free-form biography
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// Age returns full years since birthdate as of now.
func (p *UserProfileDB) Age(now time.Time) int {
	return int(now.Sub(p.Birthdate).Hours() / 24 / 365)
}

// ValidateProfile checks profile invariants: a non-empty name, a birthdate in
// the past yielding at least the minimum age, and height within range.
func ValidateProfile(name string, birthdate time.Time, heightCm float64, now time.Time) error {
	errs := validation.New()

	if name == "" {
		errs.Add("name", "Name must not be empty.")
	}
	if !birthdate.Before(now) {
		errs.Add("birthdate", "Birthdate must be in the past.")
	} else if age := int(now.Sub(birthdate).Hours() / 24 / 365); age < MinAgeYears {
		errs.Addf("birthdate", "Must be at least %d years old.", MinAgeYears)
	}
	if heightCm < 0 || heightCm > MaxHeightCm {
		errs.Addf("height_cm", "Height must be between 0 and %d.", MaxHeightCm)
	}

	return errs.Err()
}
