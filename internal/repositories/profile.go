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

type ProfileReadRepository struct {
	db *sqlx.DB
}

func NewProfileReadRepository(db *sqlx.DB) *ProfileReadRepository {
	return &ProfileReadRepository{db: db}
}

// GetOwned returns the profile only when it belongs to userID; a profile owned
// by someone else is indistinguishable from a missing one.
func (r *ProfileReadRepository) GetOwned(ctx context.Context, userID uuid.UUID, id int64) (*models.UserProfileDB, error) {
	const query = `
		SELECT id, user_id, name, birthdate, height_cm, bio, created_at, updated_at
		FROM user_profiles
		WHERE id = $1 AND user_id = $2
	`

	var profile models.UserProfileDB
	err := r.db.GetContext(ctx, &profile, query, id, userID)

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

	return &profile, nil
}

func (r *ProfileReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserProfileDB, error) {
	const query = `
		SELECT id, user_id, name, birthdate, height_cm, bio, created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`

	var profile models.UserProfileDB
	err := r.db.GetContext(ctx, &profile, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// List returns every profile. Reserved for the elevated tier.
func (r *ProfileReadRepository) List(ctx context.Context) ([]models.UserProfileDB, error) {
	const query = `
		SELECT id, user_id, name, birthdate, height_cm, bio, created_at, updated_at
		FROM user_profiles
		ORDER BY name
	`

	var profiles []models.UserProfileDB
	err := r.db.SelectContext(ctx, &profiles, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	return profiles, err
}

type ProfileWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProfileWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db, txGetter: txGetter}
}

func (r *ProfileWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *ProfileWriteRepository) Insert(ctx context.Context, userID uuid.UUID, name string, birthdate time.Time, heightCm float64, bio string) (int64, error) {
	const query = `
		INSERT INTO user_profiles (user_id, name, birthdate, height_cm, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, userID, name, birthdate, heightCm, bio)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, name, birthdate, heightCm},
		"error", err,
	)

	return id, err
}

// Update rewrites the profile's mutable fields. Returns false when no row
// matched, i.e. the profile does not exist or is not owned by userID.
func (r *ProfileWriteRepository) Update(ctx context.Context, userID uuid.UUID, id int64, name string, birthdate time.Time, heightCm float64, bio string) (bool, error) {
	const query = `
		UPDATE user_profiles
		SET name = $3, birthdate = $4, height_cm = $5, bio = $6, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, id, userID, name, birthdate, heightCm, bio)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID, name, birthdate, heightCm},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}
