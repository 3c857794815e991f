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

type ExerciseSetReadRepository struct {
	db *sqlx.DB
}

func NewExerciseSetReadRepository(db *sqlx.DB) *ExerciseSetReadRepository {
	return &ExerciseSetReadRepository{db: db}
}

func (r *ExerciseSetReadRepository) ListByExerciseLog(ctx context.Context, exerciseLogID int64) ([]models.ExerciseSetDB, error) {
	const query = `
		SELECT id, exercise_log_id, reps, weight_kg, rir
		FROM exercise_sets
		WHERE exercise_log_id = $1
		ORDER BY id
	`

	var sets []models.ExerciseSetDB
	err := r.db.SelectContext(ctx, &sets, query, exerciseLogID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{exerciseLogID},
		"error", err,
	)

	return sets, err
}

// ListByWorkout returns every set of a workout across all its exercise logs,
// used to assemble the nested read shape with one query per level.
func (r *ExerciseSetReadRepository) ListByWorkout(ctx context.Context, workoutID int64) ([]models.ExerciseSetDB, error) {
	const query = `
		SELECT es.id, es.exercise_log_id, es.reps, es.weight_kg, es.rir
		FROM exercise_sets es
		JOIN exercise_logs el ON el.id = es.exercise_log_id
		WHERE el.workout_log_id = $1
		ORDER BY es.id
	`

	var sets []models.ExerciseSetDB
	err := r.db.SelectContext(ctx, &sets, query, workoutID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{workoutID},
		"error", err,
	)

	return sets, err
}

// GetOwned resolves a set through the full ownership chain: set → exercise
// log → workout → user.
func (r *ExerciseSetReadRepository) GetOwned(ctx context.Context, userID uuid.UUID, id int64) (*models.ExerciseSetDB, error) {
	const query = `
		SELECT es.id, es.exercise_log_id, es.reps, es.weight_kg, es.rir
		FROM exercise_sets es
		JOIN exercise_logs el ON el.id = es.exercise_log_id
		JOIN workout_logs wl ON wl.id = el.workout_log_id
		WHERE es.id = $1 AND wl.user_id = $2
	`

	var set models.ExerciseSetDB
	err := r.db.GetContext(ctx, &set, query, id, userID)

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

	return &set, nil
}

type ExerciseSetWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewExerciseSetWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ExerciseSetWriteRepository {
	return &ExerciseSetWriteRepository{db: db, txGetter: txGetter}
}

func (r *ExerciseSetWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *ExerciseSetWriteRepository) Insert(ctx context.Context, exerciseLogID int64, reps int, weightKg float64, rir int) (int64, error) {
	const query = `
		INSERT INTO exercise_sets (exercise_log_id, reps, weight_kg, rir)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, exerciseLogID, reps, weightKg, rir)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{exerciseLogID, reps, weightKg, rir},
		"error", err,
	)

	return id, err
}

func (r *ExerciseSetWriteRepository) Update(ctx context.Context, id int64, reps int, weightKg float64, rir int) error {
	const query = `
		UPDATE exercise_sets
		SET reps = $2, weight_kg = $3, rir = $4
		WHERE id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, id, reps, weightKg, rir)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, reps, weightKg, rir},
		"error", err,
	)

	return err
}

func (r *ExerciseSetWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `
		DELETE FROM exercise_sets
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
