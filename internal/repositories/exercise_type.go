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

type ExerciseTypeReadRepository struct {
	db *sqlx.DB
}

func NewExerciseTypeReadRepository(db *sqlx.DB) *ExerciseTypeReadRepository {
	return &ExerciseTypeReadRepository{db: db}
}

// ListVisible returns the built-in catalog plus, when userID is set, that
// user's custom types, ordered by name.
func (r *ExerciseTypeReadRepository) ListVisible(ctx context.Context, userID *uuid.UUID) ([]models.ExerciseTypeDB, error) {
	const query = `
		SELECT id, name, muscle_group, is_custom, user_id, created_at
		FROM exercise_types
		WHERE user_id IS NULL OR user_id = $1
		ORDER BY name
	`

	var types []models.ExerciseTypeDB
	err := r.db.SelectContext(ctx, &types, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return types, err
}

// GetVisibleByID returns the type if it is built-in or owned by userID.
func (r *ExerciseTypeReadRepository) GetVisibleByID(ctx context.Context, userID *uuid.UUID, id int64) (*models.ExerciseTypeDB, error) {
	const query = `
		SELECT id, name, muscle_group, is_custom, user_id, created_at
		FROM exercise_types
		WHERE id = $1 AND (user_id IS NULL OR user_id = $2)
	`

	var et models.ExerciseTypeDB
	err := r.db.GetContext(ctx, &et, query, id, userID)

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

	return &et, nil
}

type ExerciseTypeWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewExerciseTypeWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ExerciseTypeWriteRepository {
	return &ExerciseTypeWriteRepository{db: db, txGetter: txGetter}
}

func (r *ExerciseTypeWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Insert adds a custom exercise type owned by userID.
func (r *ExerciseTypeWriteRepository) Insert(ctx context.Context, userID uuid.UUID, name string, muscleGroup models.MuscleGroup) (int64, error) {
	const query = `
		INSERT INTO exercise_types (name, muscle_group, is_custom, user_id, created_at)
		VALUES ($1, $2, TRUE, $3, NOW())
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, name, muscleGroup, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, muscleGroup, userID},
		"error", err,
	)

	return id, err
}
