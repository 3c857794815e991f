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

type MeasurementReadRepository struct {
	db *sqlx.DB
}

func NewMeasurementReadRepository(db *sqlx.DB) *MeasurementReadRepository {
	return &MeasurementReadRepository{db: db}
}

// ListOwned returns the caller's measurements with the catalog type embedded,
// newest first.
func (r *MeasurementReadRepository) ListOwned(ctx context.Context, userID uuid.UUID) ([]models.MeasurementDetail, error) {
	const query = `
		SELECT m.id, m.measurement_type_id, mt.name AS type_name, mt.unit AS type_unit, m.value, m.date
		FROM measurements m
		JOIN measurement_types mt ON mt.id = m.measurement_type_id
		WHERE m.user_id = $1
		ORDER BY m.date DESC, m.id DESC
	`

	var measurements []models.MeasurementDetail
	err := r.db.SelectContext(ctx, &measurements, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return measurements, err
}

func (r *MeasurementReadRepository) GetOwned(ctx context.Context, userID uuid.UUID, id int64) (*models.MeasurementDetail, error) {
	const query = `
		SELECT m.id, m.measurement_type_id, mt.name AS type_name, mt.unit AS type_unit, m.value, m.date
		FROM measurements m
		JOIN measurement_types mt ON mt.id = m.measurement_type_id
		WHERE m.id = $1 AND m.user_id = $2
	`

	var measurement models.MeasurementDetail
	err := r.db.GetContext(ctx, &measurement, query, id, userID)

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

	return &measurement, nil
}

type MeasurementWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMeasurementWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MeasurementWriteRepository {
	return &MeasurementWriteRepository{db: db, txGetter: txGetter}
}

func (r *MeasurementWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *MeasurementWriteRepository) Insert(ctx context.Context, userID uuid.UUID, typeID int64, value float64, date time.Time) (int64, error) {
	const query = `
		INSERT INTO measurements (user_id, measurement_type_id, value, date, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, userID, typeID, value, date)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, typeID, value, date},
		"error", err,
	)

	return id, err
}

// Update rewrites a measurement's fields. Returns false when no row matched
// under the caller's ownership predicate.
func (r *MeasurementWriteRepository) Update(ctx context.Context, userID uuid.UUID, id, typeID int64, value float64, date time.Time) (bool, error) {
	const query = `
		UPDATE measurements
		SET measurement_type_id = $3, value = $4, date = $5
		WHERE id = $1 AND user_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, id, userID, typeID, value, date)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID, typeID, value, date},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}

func (r *MeasurementWriteRepository) Delete(ctx context.Context, userID uuid.UUID, id int64) (bool, error) {
	const query = `
		DELETE FROM measurements
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
