package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Trkcnl/twacktwack/internal/models"
	"github.com/Trkcnl/twacktwack/internal/services"
	"github.com/Trkcnl/twacktwack/internal/validation"
)

func TestMeasurementService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockMeasurementReader(ctrl)
	mockWriter := services.NewMockMeasurementWriter(ctrl)
	mockTypes := services.NewMockMeasurementTypeReader(ctrl)
	svc := services.NewMeasurementService(mockReader, mockWriter, mockTypes)

	callerID := uuid.New()
	date := time.Now().AddDate(0, 0, -1)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockTypes.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(&models.MeasurementTypeDB{ID: 1, Name: "Body weight", Unit: "kg"}, nil)
		mockWriter.EXPECT().Insert(gomock.Any(), callerID, int64(1), 82.5, date).Return(int64(3), nil)
		mockReader.EXPECT().GetOwned(gomock.Any(), callerID, int64(3)).
			Return(&models.MeasurementDetail{ID: 3, TypeID: 1, TypeName: "Body weight", TypeUnit: "kg", Value: 82.5, Date: date}, nil)

		m, err := svc.Create(ctx, callerID, 1, 82.5, date)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), m.ID)
		assert.Equal(t, "kg", m.TypeUnit)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		mockTypes.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		_, err := svc.Create(ctx, callerID, 99, 82.5, date)
		errs, ok := validation.AsErrors(err)
		assert.True(t, ok)
		assert.Equal(t, []string{"Invalid measurement type."}, errs["measurement_type"])
	})

	t.Run("negative value rejected before type lookup", func(t *testing.T) {
		_, err := svc.Create(ctx, callerID, 1, -1, date)
		errs, ok := validation.AsErrors(err)
		assert.True(t, ok)
		assert.NotEmpty(t, errs["value"])
	})
}

func TestMeasurementService_UpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockMeasurementReader(ctrl)
	mockWriter := services.NewMockMeasurementWriter(ctrl)
	mockTypes := services.NewMockMeasurementTypeReader(ctrl)
	svc := services.NewMeasurementService(mockReader, mockWriter, mockTypes)

	callerID := uuid.New()
	date := time.Now().AddDate(0, 0, -1)
	ctx := context.Background()

	t.Run("update of unowned row reads as missing", func(t *testing.T) {
		mockTypes.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(&models.MeasurementTypeDB{ID: 1}, nil)
		mockWriter.EXPECT().Update(gomock.Any(), callerID, int64(7), int64(1), 80.0, date).Return(false, nil)

		_, err := svc.Update(ctx, callerID, 7, 1, 80.0, date)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("delete success", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), callerID, int64(3)).Return(true, nil)
		assert.NoError(t, svc.Delete(ctx, callerID, 3))
	})

	t.Run("delete of unowned row reads as missing", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), callerID, int64(4)).Return(false, nil)
		assert.ErrorIs(t, svc.Delete(ctx, callerID, 4), services.ErrNotFound)
	})
}
