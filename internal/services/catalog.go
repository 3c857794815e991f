package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Trkcnl/twacktwack/internal/logger"
	"github.com/Trkcnl/twacktwack/internal/models"
	"github.com/Trkcnl/twacktwack/internal/repositories"
	"github.com/Trkcnl/twacktwack/internal/validation"
)

// MeasurementTypeReader defines read operations for the measurement type catalog.
type MeasurementTypeReader interface {
	List(ctx context.Context) ([]models.MeasurementTypeDB, error)
	GetByID(ctx context.Context, id int64) (*models.MeasurementTypeDB, error)
}

// MeasurementTypeWriter defines write operations for the measurement type catalog.
type MeasurementTypeWriter interface {
	Insert(ctx context.Context, name, unit string) (int64, error)
}

// MeasurementTypeCache caches the catalog listing.
type MeasurementTypeCache interface {
	Get(ctx context.Context) ([]models.MeasurementTypeDB, error)
	Set(ctx context.Context, types []models.MeasurementTypeDB) error
	Invalidate(ctx context.Context) error
}

// ExerciseTypeReader defines read operations for the exercise type catalog.
type ExerciseTypeReader interface {
	ListVisible(ctx context.Context, userID *uuid.UUID) ([]models.ExerciseTypeDB, error)
	GetVisibleByID(ctx context.Context, userID *uuid.UUID, id int64) (*models.ExerciseTypeDB, error)
}

// ExerciseTypeWriter defines write operations for custom exercise types.
type ExerciseTypeWriter interface {
	Insert(ctx context.Context, userID uuid.UUID, name string, muscleGroup models.MuscleGroup) (int64, error)
}

// CatalogService serves the shared reference data: measurement types and
// exercise types.
type CatalogService struct {
	mtReader MeasurementTypeReader
	mtWriter MeasurementTypeWriter
	mtCache  MeasurementTypeCache
	etReader ExerciseTypeReader
	etWriter ExerciseTypeWriter
}

// NewCatalogService creates a new CatalogService instance. The cache may be
// nil, in which case every listing hits the database.
func NewCatalogService(
	mtReader MeasurementTypeReader,
	mtWriter MeasurementTypeWriter,
	mtCache MeasurementTypeCache,
	etReader ExerciseTypeReader,
	etWriter ExerciseTypeWriter,
) *CatalogService {
	return &CatalogService{
		mtReader: mtReader,
		mtWriter: mtWriter,
		mtCache:  mtCache,
		etReader: etReader,
		etWriter: etWriter,
	}
}

// ListMeasurementTypes returns the catalog ordered by name, read through the
// cache when one is configured.
func (svc *CatalogService) ListMeasurementTypes(ctx context.Context) ([]models.MeasurementTypeDB, error) {
	if svc.mtCache != nil {
		if cached, err := svc.mtCache.Get(ctx); err == nil {
			return cached, nil
		}
	}

	types, err := svc.mtReader.List(ctx)
	if err != nil {
		return nil, err
	}

	if svc.mtCache != nil {
		if err := svc.mtCache.Set(ctx, types); err != nil {
			logger.Log.Warnw("failed to cache measurement types", "err", err)
		}
	}

	return types, nil
}

// CreateMeasurementType adds a catalog entry. Reserved for the elevated tier.
func (svc *CatalogService) CreateMeasurementType(ctx context.Context, name, unit string) (*models.MeasurementTypeDB, error) {
	if err := models.ValidateMeasurementType(name, unit); err != nil {
		return nil, err
	}

	id, err := svc.mtWriter.Insert(ctx, name, unit)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			errs := validation.New()
			errs.Add("name", "Measurement type with this name already exists.")
			return nil, errs.Err()
		}
		logger.Log.Errorw("failed to insert measurement type", "err", err)
		return nil, err
	}

	if svc.mtCache != nil {
		if err := svc.mtCache.Invalidate(ctx); err != nil {
			logger.Log.Warnw("failed to invalidate measurement type cache", "err", err)
		}
	}

	return svc.mtReader.GetByID(ctx, id)
}

// ListExerciseTypes returns the built-in catalog plus the caller's custom
// types when userID is set, ordered by name.
func (svc *CatalogService) ListExerciseTypes(ctx context.Context, userID *uuid.UUID) ([]models.ExerciseTypeDB, error) {
	return svc.etReader.ListVisible(ctx, userID)
}

// CreateExerciseType adds a custom exercise type owned by the caller.
func (svc *CatalogService) CreateExerciseType(ctx context.Context, callerID uuid.UUID, name string, muscleGroup models.MuscleGroup) (*models.ExerciseTypeDB, error) {
	if err := models.ValidateExerciseType(name, muscleGroup); err != nil {
		return nil, err
	}

	id, err := svc.etWriter.Insert(ctx, callerID, name, muscleGroup)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			errs := validation.New()
			errs.Add("name", "Exercise type with this name already exists.")
			return nil, errs.Err()
		}
		logger.Log.Errorw("failed to insert exercise type", "err", err)
		return nil, err
	}

	return svc.etReader.GetVisibleByID(ctx, &callerID, id)
}
