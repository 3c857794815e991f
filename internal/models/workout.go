package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Trkcnl/twacktwack/internal/validation"
)

// WorkoutLogDB represents a workout session row.
type WorkoutLogDB struct {
	ID        int64     `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Begintime time.Time `json:"begintime" db:"begintime"`
	Endtime   time.Time `json:"endtime" db:"endtime"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// WorkoutDetail is the denormalized read projection of a workout with its
// exercise logs and sets embedded. Returned after every successful write so
// identifiers assigned by the store reach the client.
type WorkoutDetail struct {
	ID           int64
	Begintime    time.Time
	Endtime      time.Time
	ExerciseLogs []ExerciseLogDetail
}

// ValidateWorkoutTimes checks that the session interval is well-formed.
// The time ordering is a cross-field rule, so the message goes under the
// non-field key; this mirrors how clients already consume the error body.
func ValidateWorkoutTimes(begintime, endtime time.Time) error {
	errs := validation.New()

	if !endtime.After(begintime) {
		errs.Add(validation.NonFieldErrors, "End time must be after begin time.")
	}

	return errs.Err()
}
