package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Trkcnl/twacktwack/internal/logger"
	"github.com/Trkcnl/twacktwack/internal/models"
	"github.com/Trkcnl/twacktwack/internal/validation"
)

// MeasurementReader defines read operations for measurements.
type MeasurementReader interface {
	ListOwned(ctx context.Context, userID uuid.UUID) ([]models.MeasurementDetail, error)
	GetOwned(ctx context.Context, userID uuid.UUID, id int64) (*models.MeasurementDetail, error)
}

// MeasurementWriter defines write operations for measurements.
type MeasurementWriter interface {
	Insert(ctx context.Context, userID uuid.UUID, typeID int64, value float64, date time.Time) (int64, error)
	Update(ctx context.Context, userID uuid.UUID, id, typeID int64, value float64, date time.Time) (bool, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) (bool, error)
}

// MeasurementService manages a user's dated observations.
type MeasurementService struct {
	reader   MeasurementReader
	writer   MeasurementWriter
	mtReader MeasurementTypeReader
	now      func() time.Time
}

// NewMeasurementService creates a new MeasurementService instance.
func NewMeasurementService(reader MeasurementReader, writer MeasurementWriter, mtReader MeasurementTypeReader) *MeasurementService {
	return &MeasurementService{
		reader:   reader,
		writer:   writer,
		mtReader: mtReader,
		now:      time.Now,
	}
}

// List returns the caller's measurements in the read shape.
func (svc *MeasurementService) List(ctx context.Context, callerID uuid.UUID) ([]models.MeasurementDetail, error) {
	return svc.reader.ListOwned(ctx, callerID)
}

// Get returns one owned measurement, ErrNotFound otherwise.
func (svc *MeasurementService) Get(ctx context.Context, callerID uuid.UUID, id int64) (*models.MeasurementDetail, error) {
	measurement, err := svc.reader.GetOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	if measurement == nil {
		return nil, ErrNotFound
	}
	return measurement, nil
}

// Create stores a new measurement and returns the read shape.
func (svc *MeasurementService) Create(ctx context.Context, callerID uuid.UUID, typeID int64, value float64, date time.Time) (*models.MeasurementDetail, error) {
	if err := svc.validate(ctx, typeID, value, date); err != nil {
		return nil, err
	}

	id, err := svc.writer.Insert(ctx, callerID, typeID, value, date)
	if err != nil {
		logger.Log.Errorw("failed to insert measurement", "err", err)
		return nil, err
	}

	return svc.Get(ctx, callerID, id)
}

// Update rewrites an owned measurement and returns the read shape.
func (svc *MeasurementService) Update(ctx context.Context, callerID uuid.UUID, id, typeID int64, value float64, date time.Time) (*models.MeasurementDetail, error) {
	if err := svc.validate(ctx, typeID, value, date); err != nil {
		return nil, err
	}

	updated, err := svc.writer.Update(ctx, callerID, id, typeID, value, date)
	if err != nil {
		logger.Log.Errorw("failed to update measurement", "err", err)
		return nil, err
	}
	if !updated {
		return nil, ErrNotFound
	}

	return svc.Get(ctx, callerID, id)
}

// Delete removes an owned measurement.
func (svc *MeasurementService) Delete(ctx context.Context, callerID uuid.UUID, id int64) error {
	deleted, err := svc.writer.Delete(ctx, callerID, id)
	if err != nil {
		logger.Log.Errorw("failed to delete measurement", "err", err)
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (svc *MeasurementService) validate(ctx context.Context, typeID int64, value float64, date time.Time) error {
	if err := models.ValidateMeasurement(value, date, svc.now()); err != nil {
		return err
	}

	mt, err := svc.mtReader.GetByID(ctx, typeID)
	if err != nil {
		return err
	}
	if mt == nil {
		errs := validation.New()
		errs.Add("measurement_type", "Invalid measurement type.")
		return errs.Err()
	}

	return nil
}
