package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Trkcnl/twacktwack/internal/logger"
	"github.com/Trkcnl/twacktwack/internal/models"
	"github.com/Trkcnl/twacktwack/internal/repositories"
	"github.com/Trkcnl/twacktwack/internal/validation"
)

// ExerciseLogReader defines the exercise log reads the exercise service needs.
type ExerciseLogReader interface {
	ExerciseLogListReader
	GetOwned(ctx context.Context, userID uuid.UUID, id int64) (*models.ExerciseLogDB, error)
}

// ExerciseSetReader defines the set reads the exercise service needs.
type ExerciseSetReader interface {
	ExerciseSetListReader
	GetOwned(ctx context.Context, userID uuid.UUID, id int64) (*models.ExerciseSetDB, error)
}

// ExerciseService serves exercise logs and sets addressed directly rather
// than through a whole-workout write. Every operation re-derives ownership
// through the workout chain.
type ExerciseService struct {
	workoutReader WorkoutReader
	logReader     ExerciseLogReader
	logWriter     ExerciseLogWriter
	setReader     ExerciseSetReader
	setWriter     ExerciseSetWriter
	typeReader    ExerciseTypeReader
}

// NewExerciseService creates a new ExerciseService instance.
func NewExerciseService(
	workoutReader WorkoutReader,
	logReader ExerciseLogReader,
	logWriter ExerciseLogWriter,
	setReader ExerciseSetReader,
	setWriter ExerciseSetWriter,
	typeReader ExerciseTypeReader,
) *ExerciseService {
	return &ExerciseService{
		workoutReader: workoutReader,
		logReader:     logReader,
		logWriter:     logWriter,
		setReader:     setReader,
		setWriter:     setWriter,
		typeReader:    typeReader,
	}
}

// ListLogs returns the exercise logs of an owned workout in the read shape.
func (svc *ExerciseService) ListLogs(ctx context.Context, callerID uuid.UUID, workoutID int64) ([]models.ExerciseLogDetail, error) {
	workout, err := svc.workoutReader.GetOwned(ctx, callerID, workoutID)
	if err != nil {
		return nil, err
	}
	if workout == nil {
		return nil, ErrNotFound
	}

	logs, err := svc.logReader.ListDetailByWorkout(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	for i := range logs {
		sets, err := svc.setReader.ListByExerciseLog(ctx, logs[i].ID)
		if err != nil {
			return nil, err
		}
		logs[i].Sets = sets
	}
	return logs, nil
}

// AddLog adds one exercise to an owned workout.
func (svc *ExerciseService) AddLog(ctx context.Context, callerID uuid.UUID, workoutID, exerciseTypeID int64) (*models.ExerciseLogDetail, error) {
	workout, err := svc.workoutReader.GetOwned(ctx, callerID, workoutID)
	if err != nil {
		return nil, err
	}
	if workout == nil {
		return nil, ErrNotFound
	}

	if err := svc.checkType(ctx, callerID, exerciseTypeID); err != nil {
		return nil, err
	}

	id, err := svc.logWriter.Insert(ctx, workoutID, exerciseTypeID)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			errs := validation.New()
			errs.Add("exercise_type", "Exercise type already present in this workout.")
			return nil, errs.Err()
		}
		logger.Log.Errorw("failed to insert exercise log", "err", err)
		return nil, err
	}

	return svc.GetLog(ctx, callerID, id)
}

// GetLog returns one owned exercise log in the read shape.
func (svc *ExerciseService) GetLog(ctx context.Context, callerID uuid.UUID, id int64) (*models.ExerciseLogDetail, error) {
	log, err := svc.logReader.GetOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, ErrNotFound
	}

	details, err := svc.logReader.ListDetailByWorkout(ctx, log.WorkoutLogID)
	if err != nil {
		return nil, err
	}
	for i := range details {
		if details[i].ID != id {
			continue
		}
		sets, err := svc.setReader.ListByExerciseLog(ctx, id)
		if err != nil {
			return nil, err
		}
		details[i].Sets = sets
		return &details[i], nil
	}
	return nil, ErrNotFound
}

// UpdateLog swaps the exercise type of an owned log.
func (svc *ExerciseService) UpdateLog(ctx context.Context, callerID uuid.UUID, id, exerciseTypeID int64) (*models.ExerciseLogDetail, error) {
	log, err := svc.logReader.GetOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, ErrNotFound
	}

	if err := svc.checkType(ctx, callerID, exerciseTypeID); err != nil {
		return nil, err
	}

	if err := svc.logWriter.UpdateType(ctx, id, exerciseTypeID); err != nil {
		if repositories.IsUniqueViolation(err) {
			errs := validation.New()
			errs.Add("exercise_type", "Exercise type already present in this workout.")
			return nil, errs.Err()
		}
		logger.Log.Errorw("failed to update exercise log", "err", err)
		return nil, err
	}

	return svc.GetLog(ctx, callerID, id)
}

// DeleteLog removes an owned exercise log and its sets.
func (svc *ExerciseService) DeleteLog(ctx context.Context, callerID uuid.UUID, id int64) error {
	log, err := svc.logReader.GetOwned(ctx, callerID, id)
	if err != nil {
		return err
	}
	if log == nil {
		return ErrNotFound
	}

	return svc.logWriter.Delete(ctx, id)
}

// ListSets returns the sets of an owned exercise log.
func (svc *ExerciseService) ListSets(ctx context.Context, callerID uuid.UUID, exerciseLogID int64) ([]models.ExerciseSetDB, error) {
	log, err := svc.logReader.GetOwned(ctx, callerID, exerciseLogID)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, ErrNotFound
	}

	return svc.setReader.ListByExerciseLog(ctx, exerciseLogID)
}

// AddSet appends a set to an owned exercise log.
func (svc *ExerciseService) AddSet(ctx context.Context, callerID uuid.UUID, exerciseLogID int64, reps int, weightKg float64, rir int) (*models.ExerciseSetDB, error) {
	log, err := svc.logReader.GetOwned(ctx, callerID, exerciseLogID)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, ErrNotFound
	}

	if err := models.ValidateExerciseSet(reps, weightKg, rir); err != nil {
		return nil, err
	}

	id, err := svc.setWriter.Insert(ctx, exerciseLogID, reps, weightKg, rir)
	if err != nil {
		logger.Log.Errorw("failed to insert exercise set", "err", err)
		return nil, err
	}

	return svc.GetSet(ctx, callerID, id)
}

// GetSet returns one owned set.
func (svc *ExerciseService) GetSet(ctx context.Context, callerID uuid.UUID, id int64) (*models.ExerciseSetDB, error) {
	set, err := svc.setReader.GetOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, ErrNotFound
	}
	return set, nil
}

// UpdateSet rewrites an owned set.
func (svc *ExerciseService) UpdateSet(ctx context.Context, callerID uuid.UUID, id int64, reps int, weightKg float64, rir int) (*models.ExerciseSetDB, error) {
	set, err := svc.setReader.GetOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, ErrNotFound
	}

	if err := models.ValidateExerciseSet(reps, weightKg, rir); err != nil {
		return nil, err
	}

	if err := svc.setWriter.Update(ctx, id, reps, weightKg, rir); err != nil {
		logger.Log.Errorw("failed to update exercise set", "err", err)
		return nil, err
	}

	return svc.GetSet(ctx, callerID, id)
}

// DeleteSet removes an owned set.
func (svc *ExerciseService) DeleteSet(ctx context.Context, callerID uuid.UUID, id int64) error {
	set, err := svc.setReader.GetOwned(ctx, callerID, id)
	if err != nil {
		return err
	}
	if set == nil {
		return ErrNotFound
	}

	return svc.setWriter.Delete(ctx, id)
}

func (svc *ExerciseService) checkType(ctx context.Context, callerID uuid.UUID, exerciseTypeID int64) error {
	et, err := svc.typeReader.GetVisibleByID(ctx, &callerID, exerciseTypeID)
	if err != nil {
		return err
	}
	if et == nil {
		errs := validation.New()
		errs.Add("exercise_type", "Invalid exercise type.")
		return errs.Err()
	}
	return nil
}
