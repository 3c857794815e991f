package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Trkcnl/twacktwack/internal/validation"
)

// MeasurementTypeDB represents a catalog measurement type row.
// Catalog entities are shared reference data, not owned by any user.
type MeasurementTypeDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Name      string    `json:"name" db:"name"`             // Globally unique name
	Unit      string    `json:"unit" db:"unit"`             // Unit label, e.g. kg
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// MeasurementDB represents a dated scalar observation owned by a user.
type MeasurementDB struct {
	ID                int64     `json:"id" db:"id"`
	UserID            uuid.UUID `json:"user_id" db:"user_id"`
	MeasurementTypeID int64     `json:"measurement_type_id" db:"measurement_type_id"`
	Value             float64   `json:"value" db:"value"`
	Date              time.Time `json:"date" db:"date"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// MeasurementDetail is the denormalized read projection: the catalog type's
// name and unit are embedded inline.
type MeasurementDetail struct {
	ID       int64     `db:"id"`
	TypeID   int64     `db:"measurement_type_id"`
	TypeName string    `db:"type_name"`
	TypeUnit string    `db:"type_unit"`
	Value    float64   `db:"value"`
	Date     time.Time `db:"date"`
}

// ValidateMeasurement checks measurement invariants: value within the range
// the NUMERIC(5,2) column can hold and a date not in the future.
func ValidateMeasurement(value float64, date, now time.Time) error {
	errs := validation.New()

	if value < 0 {
		errs.Add("value", "Value must not be negative.")
	}
	if value >= 1000 {
		errs.Add("value", "Ensure that there are no more than 3 digits before the decimal point.")
	}
	if date.After(now) {
		errs.Add("date", "Date must not be in the future.")
	}

	return errs.Err()
}

// ValidateMeasurementType checks catalog type invariants.
func ValidateMeasurementType(name, unit string) error {
	errs := validation.New()

	if name == "" {
		errs.Add("name", "Name must not be empty.")
	}
	if unit == "" {
		errs.Add("unit", "Unit must not be empty.")
	}

	return errs.Err()
}
