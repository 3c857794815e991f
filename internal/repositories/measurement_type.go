package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/Trkcnl/twacktwack/internal/logger"
	"github.com/Trkcnl/twacktwack/internal/models"
)

type MeasurementTypeReadRepository struct {
	db *sqlx.DB
}

func NewMeasurementTypeReadRepository(db *sqlx.DB) *MeasurementTypeReadRepository {
	return &MeasurementTypeReadRepository{db: db}
}

func (r *MeasurementTypeReadRepository) List(ctx context.Context) ([]models.MeasurementTypeDB, error) {
	const query = `
		SELECT id, name, unit, created_at
		FROM measurement_types
		ORDER BY name
	`

	var types []models.MeasurementTypeDB
	err := r.db.SelectContext(ctx, &types, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	return types, err
}

func (r *MeasurementTypeReadRepository) GetByID(ctx context.Context, id int64) (*models.MeasurementTypeDB, error) {
	const query = `
		SELECT id, name, unit, created_at
		FROM measurement_types
		WHERE id = $1
	`

	var mt models.MeasurementTypeDB
	err := r.db.GetContext(ctx, &mt, query, id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &mt, nil
}

type MeasurementTypeWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMeasurementTypeWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MeasurementTypeWriteRepository {
	return &MeasurementTypeWriteRepository{db: db, txGetter: txGetter}
}

func (r *MeasurementTypeWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *MeasurementTypeWriteRepository) Insert(ctx context.Context, name, unit string) (int64, error) {
	const query = `
		INSERT INTO measurement_types (name, unit, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, name, unit)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, unit},
		"error", err,
	)

	return id, err
}

// measurementTypesCacheKey holds the full catalog listing as a JSON blob.
const measurementTypesCacheKey = "catalog:measurement_types"

// MeasurementTypeCacheRepository caches the catalog listing in Redis.
type MeasurementTypeCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewMeasurementTypeCacheRepository(client *redis.Client, expiration time.Duration) *MeasurementTypeCacheRepository {
	return &MeasurementTypeCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached listing, or redis.Nil when the cache is cold.
func (r *MeasurementTypeCacheRepository) Get(ctx context.Context) ([]models.MeasurementTypeDB, error) {
	val, err := r.client.Get(ctx, measurementTypesCacheKey).Result()

	logger.Log.Infow("cache read",
		"key", measurementTypesCacheKey,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	var types []models.MeasurementTypeDB
	if err := json.Unmarshal([]byte(val), &types); err != nil {
		return nil, err
	}

	return types, nil
}

// Set stores the listing with the configured expiration.
func (r *MeasurementTypeCacheRepository) Set(ctx context.Context, types []models.MeasurementTypeDB) error {
	payload, err := json.Marshal(types)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, measurementTypesCacheKey, payload, r.exp).Err()

	logger.Log.Infow("cache write",
		"key", measurementTypesCacheKey,
		"entries", len(types),
		"error", err,
	)

	return err
}

// Invalidate drops the cached listing after a catalog write.
func (r *MeasurementTypeCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, measurementTypesCacheKey).Err()

	logger.Log.Infow("cache invalidate",
		"key", measurementTypesCacheKey,
		"error", err,
	)

	return err
}
