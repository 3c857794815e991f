package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Trkcnl/twacktwack/internal/logger"
	"github.com/Trkcnl/twacktwack/internal/models"
)

type WorkoutReadRepository struct {
	db *sqlx.DB
}

func NewWorkoutReadRepository(db *sqlx.DB) *WorkoutReadRepository {
	return &WorkoutReadRepository{db: db}
}

func (r *WorkoutReadRepository) ListOwned(ctx context.Context, userID uuid.UUID) ([]models.WorkoutLogDB, error) {
	const query = `
		SELECT id, user_id, begintime, endtime, created_at
		FROM workout_logs
		WHERE user_id = $1
		ORDER BY begintime DESC, id DESC
	`

	var workouts []models.WorkoutLogDB
	err := r.db.SelectContext(ctx, &workouts, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return workouts, err
}

func (r *WorkoutReadRepository) GetOwned(ctx context.Context, userID uuid.UUID, id int64) (*models.WorkoutLogDB, error) {
	const query = `
		SELECT id, user_id, begintime, endtime, created_at
		FROM workout_logs
		WHERE id = $1 AND user_id = $2
	`

	var workout models.WorkoutLogDB
	err := r.db.GetContext(ctx, &workout, query, id, userID)

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

	return &workout, nil
}

type WorkoutWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWorkoutWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WorkoutWriteRepository {
	return &WorkoutWriteRepository{db: db, txGetter: txGetter}
}

func (r *WorkoutWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *WorkoutWriteRepository) Insert(ctx context.Context, userID uuid.UUID, begintime, endtime time.Time) (int64, error) {
	const query = `
		INSERT INTO workout_logs (user_id, begintime, endtime, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, userID, begintime, endtime)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, begintime, endtime},
		"error", err,
	)

	return id, err
}

// UpdateTimes rewrites the session interval. Returns false when no row matched
// under the caller's ownership predicate.
func (r *WorkoutWriteRepository) UpdateTimes(ctx context.Context, userID uuid.UUID, id int64, begintime, endtime time.Time) (bool, error) {
	const query = `
		UPDATE workout_logs
		SET begintime = $3, endtime = $4
		WHERE id = $1 AND user_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, id, userID, begintime, endtime)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID, begintime, endtime},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}

// Delete removes the workout; exercise logs and sets go with it via cascade.
func (r *WorkoutWriteRepository) Delete(ctx context.Context, userID uuid.UUID, id int64) (bool, error) {
	const query = `
		DELETE FROM workout_logs
		WHERE id = $1 AND user_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, id, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}
