package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Trkcnl/twacktwack/internal/logger"
	"github.com/Trkcnl/twacktwack/internal/models"
)

type ExerciseLogReadRepository struct {
	db *sqlx.DB
}

func NewExerciseLogReadRepository(db *sqlx.DB) *ExerciseLogReadRepository {
	return &ExerciseLogReadRepository{db: db}
}

// ListByWorkout returns the raw exercise log rows of one workout. Callers are
// expected to have verified workout ownership already.
func (r *ExerciseLogReadRepository) ListByWorkout(ctx context.Context, workoutID int64) ([]models.ExerciseLogDB, error) {
	const query = `
		SELECT id, workout_log_id, exercise_type_id
		FROM exercise_logs
		WHERE workout_log_id = $1
		ORDER BY id
	`

	var logs []models.ExerciseLogDB
	err := r.db.SelectContext(ctx, &logs, query, workoutID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{workoutID},
		"error", err,
	)

	return logs, err
}

// ListDetailByWorkout returns the exercise logs of one workout with the
// catalog type embedded. Sets are loaded separately.
func (r *ExerciseLogReadRepository) ListDetailByWorkout(ctx context.Context, workoutID int64) ([]models.ExerciseLogDetail, error) {
	const query = `
		SELECT el.id, el.exercise_type_id, et.name AS type_name, et.muscle_group AS type_muscle_group
		FROM exercise_logs el
		JOIN exercise_types et ON et.id = el.exercise_type_id
		WHERE el.workout_log_id = $1
		ORDER BY el.id
	`

	var details []models.ExerciseLogDetail
	err := r.db.SelectContext(ctx, &details, query, workoutID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{workoutID},
		"error", err,
	)

	return details, err
}

// GetOwned resolves an exercise log through the ownership chain: the log's
// workout must belong to userID.
func (r *ExerciseLogReadRepository) GetOwned(ctx context.Context, userID uuid.UUID, id int64) (*models.ExerciseLogDB, error) {
	const query = `
		SELECT el.id, el.workout_log_id, el.exercise_type_id
		FROM exercise_logs el
		JOIN workout_logs wl ON wl.id = el.workout_log_id
		WHERE el.id = $1 AND wl.user_id = $2
	`

	var log models.ExerciseLogDB
	err := r.db.GetContext(ctx, &log, query, id, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &log, nil
}

type ExerciseLogWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewExerciseLogWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ExerciseLogWriteRepository {
	return &ExerciseLogWriteRepository{db: db, txGetter: txGetter}
}

func (r *ExerciseLogWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *ExerciseLogWriteRepository) Insert(ctx context.Context, workoutID, exerciseTypeID int64) (int64, error) {
	const query = `
		INSERT INTO exercise_logs (workout_log_id, exercise_type_id)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, workoutID, exerciseTypeID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{workoutID, exerciseTypeID},
		"error", err,
	)

	return id, err
}

func (r *ExerciseLogWriteRepository) UpdateType(ctx context.Context, id, exerciseTypeID int64) error {
	const query = `
		UPDATE exercise_logs
		SET exercise_type_id = $2
		WHERE id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, id, exerciseTypeID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, exerciseTypeID},
		"error", err,
	)

	return err
}

// Delete removes the exercise log; its sets go with it via cascade.
func (r *ExerciseLogWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `
		DELETE FROM exercise_logs
		WHERE id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	return err
}
