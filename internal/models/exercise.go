package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Trkcnl/twacktwack/internal/validation"
)

// MuscleGroup classifies an exercise type.
type MuscleGroup string

// Known muscle groups.
const (
	Chest     MuscleGroup = "chest"
	Shoulder  MuscleGroup = "shoulder"
	Triceps   MuscleGroup = "triceps"
	Biceps    MuscleGroup = "biceps"
	Back      MuscleGroup = "back"
	Quad      MuscleGroup = "quad"
	Hamstring MuscleGroup = "hamstring"
	Calve     MuscleGroup = "calve"
	Glute     MuscleGroup = "glute"
)

// MuscleGroups lists every known muscle group.
func MuscleGroups() []MuscleGroup {
	return []MuscleGroup{Chest, Shoulder, Triceps, Biceps, Back, Quad, Hamstring, Calve, Glute}
}

// Valid reports whether m names a known muscle group.
func (m MuscleGroup) Valid() bool {
	for _, g := range MuscleGroups() {
		if m == g {
			return true
		}
	}
	return false
}

// Set bounds.
const (
	MaxReps     = 100
	MaxWeightKg = 300
	MaxRIR      = 6
)

// ExerciseTypeDB represents a catalog exercise type row. Built-in types have a
// nil UserID and are shared; custom types are owned by the creating user.
type ExerciseTypeDB struct {
	ID          int64       `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	MuscleGroup MuscleGroup `json:"muscle_group" db:"muscle_group"`
	IsCustom    bool        `json:"is_custom" db:"is_custom"`
	UserID      *uuid.UUID  `json:"user_id,omitempty" db:"user_id"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}

// ExerciseLogDB links one workout to one exercise type performed in it.
// (workout_log_id, exercise_type_id) is unique per workout.
type ExerciseLogDB struct {
	ID             int64 `json:"id" db:"id"`
	WorkoutLogID   int64 `json:"workout_log_id" db:"workout_log_id"`
	ExerciseTypeID int64 `json:"exercise_type_id" db:"exercise_type_id"`
}

// ExerciseSetDB represents one performed set.
type ExerciseSetDB struct {
	ID            int64   `json:"id" db:"id"`
	ExerciseLogID int64   `json:"exercise_log_id" db:"exercise_log_id"`
	Reps          int     `json:"reps" db:"reps"`
	WeightKg      float64 `json:"weight_kg" db:"weight_kg"`
	RIR           int     `json:"rir" db:"rir"`
}

// ExerciseLogDetail is the denormalized read projection of an exercise log
// with its catalog type and sets embedded.
type ExerciseLogDetail struct {
	ID              int64       `db:"id"`
	ExerciseTypeID  int64       `db:"exercise_type_id"`
	TypeName        string      `db:"type_name"`
	TypeMuscleGroup MuscleGroup `db:"type_muscle_group"`
	Sets            []ExerciseSetDB
}

// ValidateExerciseSet checks set invariants: reps, weight and RIR within their
// ranges.
func ValidateExerciseSet(reps int, weightKg float64, rir int) error {
	errs := validation.New()

	if reps < 0 || reps > MaxReps {
		errs.Addf("reps", "Reps must be between 0 and %d.", MaxReps)
	}
	if weightKg < 0 || weightKg > MaxWeightKg {
		errs.Addf("weight_kg", "Weight must be between 0 and %d.", MaxWeightKg)
	}
	if rir < 0 || rir > MaxRIR {
		errs.Addf("rir", "RIR must be between 0 and %d.", MaxRIR)
	}

	return errs.Err()
}

// ValidateExerciseType checks catalog exercise type invariants.
func ValidateExerciseType(name string, muscleGroup MuscleGroup) error {
	errs := validation.New()

	if name == "" {
		errs.Add("name", "Name must not be empty.")
	}
	if !muscleGroup.Valid() {
		errs.Addf("muscle_group", "Unknown muscle group %q.", string(muscleGroup))
	}

	return errs.Err()
}
