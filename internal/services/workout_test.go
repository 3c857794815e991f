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

type workoutMocks struct {
	reader     *services.MockWorkoutReader
	writer     *services.MockWorkoutWriter
	logReader  *services.MockExerciseLogListReader
	logWriter  *services.MockExerciseLogWriter
	setReader  *services.MockExerciseSetListReader
	setWriter  *services.MockExerciseSetWriter
	typeReader *services.MockExerciseTypeReader
	txRunner   *services.MockTxRunner
	kafka      *services.MockKafkaWriter
}

func newWorkoutService(ctrl *gomock.Controller) (*services.WorkoutService, workoutMocks) {
	m := workoutMocks{
		reader:     services.NewMockWorkoutReader(ctrl),
		writer:     services.NewMockWorkoutWriter(ctrl),
		logReader:  services.NewMockExerciseLogListReader(ctrl),
		logWriter:  services.NewMockExerciseLogWriter(ctrl),
		setReader:  services.NewMockExerciseSetListReader(ctrl),
		setWriter:  services.NewMockExerciseSetWriter(ctrl),
		typeReader: services.NewMockExerciseTypeReader(ctrl),
		txRunner:   services.NewMockTxRunner(ctrl),
		kafka:      services.NewMockKafkaWriter(ctrl),
	}
	svc := services.NewWorkoutService(
		m.reader, m.writer,
		m.logReader, m.logWriter,
		m.setReader, m.setWriter,
		m.typeReader, m.txRunner, m.kafka,
	)
	return svc, m
}

// passthroughTx makes the mocked transaction runner execute the submitted
// function directly.
func passthroughTx(m *services.MockTxRunner) {
	m.EXPECT().
		RunInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func int64Ptr(v int64) *int64 { return &v }

func TestWorkoutService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newWorkoutService(ctrl)

	callerID := uuid.New()
	begin := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)
	end := begin.Add(time.Hour)
	ctx := context.Background()

	in := services.WorkoutInput{
		Begintime: begin,
		Endtime:   end,
		ExerciseLogs: []services.ExerciseLogInput{
			{
				ExerciseTypeID: 1,
				Sets: []services.ExerciseSetInput{
					{Reps: 8, WeightKg: 100, RIR: 2},
					{Reps: 8, WeightKg: 100, RIR: 1},
				},
			},
		},
	}

	m.typeReader.EXPECT().
		GetVisibleByID(gomock.Any(), gomock.Any(), int64(1)).
		Return(&models.ExerciseTypeDB{ID: 1, Name: "Bench Press", MuscleGroup: models.Chest}, nil)

	passthroughTx(m.txRunner)
	m.writer.EXPECT().Insert(gomock.Any(), callerID, begin, end).Return(int64(5), nil)
	m.logWriter.EXPECT().Insert(gomock.Any(), int64(5), int64(1)).Return(int64(10), nil)
	m.setWriter.EXPECT().Insert(gomock.Any(), int64(10), 8, 100.0, 2).Return(int64(100), nil)
	m.setWriter.EXPECT().Insert(gomock.Any(), int64(10), 8, 100.0, 1).Return(int64(101), nil)

	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	// Response is the freshly loaded read shape
	m.reader.EXPECT().GetOwned(gomock.Any(), callerID, int64(5)).
		Return(&models.WorkoutLogDB{ID: 5, UserID: callerID, Begintime: begin, Endtime: end}, nil)
	m.logReader.EXPECT().ListDetailByWorkout(gomock.Any(), int64(5)).
		Return([]models.ExerciseLogDetail{{ID: 10, ExerciseTypeID: 1, TypeName: "Bench Press", TypeMuscleGroup: models.Chest}}, nil)
	m.setReader.EXPECT().ListByWorkout(gomock.Any(), int64(5)).
		Return([]models.ExerciseSetDB{
			{ID: 100, ExerciseLogID: 10, Reps: 8, WeightKg: 100, RIR: 2},
			{ID: 101, ExerciseLogID: 10, Reps: 8, WeightKg: 100, RIR: 1},
		}, nil)

	detail, err := svc.Create(ctx, callerID, in)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), detail.ID)
	assert.Len(t, detail.ExerciseLogs, 1)
	assert.Len(t, detail.ExerciseLogs[0].Sets, 2)
	assert.Equal(t, int64(100), detail.ExerciseLogs[0].Sets[0].ID)
}

func TestWorkoutService_Create_InvalidTimes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newWorkoutService(ctrl)

	begin := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)
	in := services.WorkoutInput{Begintime: begin, Endtime: begin}

	_, err := svc.Create(context.Background(), uuid.New(), in)
	errs, ok := validation.AsErrors(err)
	assert.True(t, ok)
	assert.Equal(t, []string{"End time must be after begin time."}, errs[validation.NonFieldErrors])
}

func TestWorkoutService_Create_InvalidExerciseType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newWorkoutService(ctrl)

	begin := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)
	in := services.WorkoutInput{
		Begintime:    begin,
		Endtime:      begin.Add(time.Hour),
		ExerciseLogs: []services.ExerciseLogInput{{ExerciseTypeID: 99}},
	}

	m.typeReader.EXPECT().
		GetVisibleByID(gomock.Any(), gomock.Any(), int64(99)).
		Return(nil, nil)

	_, err := svc.Create(context.Background(), uuid.New(), in)
	errs, ok := validation.AsErrors(err)
	assert.True(t, ok)
	assert.Equal(t, []string{"Invalid exercise type."}, errs["exercise_type"])
}

// The reconciliation scenario: one log kept with its sets reconciled, one log
// omitted and deleted, one new log inserted.
func TestWorkoutService_Update_Reconciles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newWorkoutService(ctrl)

	callerID := uuid.New()
	begin := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)
	end := begin.Add(time.Hour)
	ctx := context.Background()

	in := services.WorkoutInput{
		Begintime: begin,
		Endtime:   end,
		ExerciseLogs: []services.ExerciseLogInput{
			{
				ID:             int64Ptr(10),
				ExerciseTypeID: 1,
				Sets: []services.ExerciseSetInput{
					// Set 100 kept with a heavier load, set 101 omitted, one new set
					{ID: int64Ptr(100), Reps: 8, WeightKg: 105, RIR: 1},
					{Reps: 8, WeightKg: 60, RIR: 2},
				},
			},
			{
				// New log, no identifier
				ExerciseTypeID: 3,
				Sets:           []services.ExerciseSetInput{{Reps: 5, WeightKg: 140, RIR: 0}},
			},
		},
	}

	workout := &models.WorkoutLogDB{ID: 5, UserID: callerID, Begintime: begin, Endtime: end}
	m.reader.EXPECT().GetOwned(gomock.Any(), callerID, int64(5)).Return(workout, nil).Times(2)

	m.typeReader.EXPECT().
		GetVisibleByID(gomock.Any(), gomock.Any(), int64(1)).
		Return(&models.ExerciseTypeDB{ID: 1}, nil)
	m.typeReader.EXPECT().
		GetVisibleByID(gomock.Any(), gomock.Any(), int64(3)).
		Return(&models.ExerciseTypeDB{ID: 3}, nil)

	m.logReader.EXPECT().ListByWorkout(gomock.Any(), int64(5)).
		Return([]models.ExerciseLogDB{
			{ID: 10, WorkoutLogID: 5, ExerciseTypeID: 1},
			{ID: 11, WorkoutLogID: 5, ExerciseTypeID: 2},
		}, nil)
	m.setReader.EXPECT().ListByExerciseLog(gomock.Any(), int64(10)).
		Return([]models.ExerciseSetDB{
			{ID: 100, ExerciseLogID: 10, Reps: 8, WeightKg: 100, RIR: 2},
			{ID: 101, ExerciseLogID: 10, Reps: 8, WeightKg: 100, RIR: 2},
		}, nil)

	passthroughTx(m.txRunner)
	m.writer.EXPECT().UpdateTimes(gomock.Any(), callerID, int64(5), begin, end).Return(true, nil)

	// Log 11 was omitted from the payload
	m.logWriter.EXPECT().Delete(gomock.Any(), int64(11)).Return(nil)

	// Log 10 stays, its sets reconcile
	m.logWriter.EXPECT().UpdateType(gomock.Any(), int64(10), int64(1)).Return(nil)
	m.setWriter.EXPECT().Delete(gomock.Any(), int64(101)).Return(nil)
	m.setWriter.EXPECT().Update(gomock.Any(), int64(100), 8, 105.0, 1).Return(nil)
	m.setWriter.EXPECT().Insert(gomock.Any(), int64(10), 8, 60.0, 2).Return(int64(102), nil)

	// New log inserted with its set
	m.logWriter.EXPECT().Insert(gomock.Any(), int64(5), int64(3)).Return(int64(12), nil)
	m.setWriter.EXPECT().Insert(gomock.Any(), int64(12), 5, 140.0, 0).Return(int64(103), nil)

	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	m.logReader.EXPECT().ListDetailByWorkout(gomock.Any(), int64(5)).
		Return([]models.ExerciseLogDetail{
			{ID: 10, ExerciseTypeID: 1},
			{ID: 12, ExerciseTypeID: 3},
		}, nil)
	m.setReader.EXPECT().ListByWorkout(gomock.Any(), int64(5)).
		Return([]models.ExerciseSetDB{
			{ID: 100, ExerciseLogID: 10, Reps: 8, WeightKg: 105, RIR: 1},
			{ID: 102, ExerciseLogID: 10, Reps: 8, WeightKg: 60, RIR: 2},
			{ID: 103, ExerciseLogID: 12, Reps: 5, WeightKg: 140, RIR: 0},
		}, nil)

	detail, err := svc.Update(ctx, callerID, 5, in)
	assert.NoError(t, err)
	assert.Len(t, detail.ExerciseLogs, 2)
	assert.Len(t, detail.ExerciseLogs[0].Sets, 2)
	assert.Equal(t, 105.0, detail.ExerciseLogs[0].Sets[0].WeightKg)
	assert.Len(t, detail.ExerciseLogs[1].Sets, 1)
}

// Re-submitting the stored read shape unchanged updates everything in place:
// no deletes, no inserts, and the loaded result matches what was sent.
func TestWorkoutService_Update_Resubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newWorkoutService(ctrl)

	callerID := uuid.New()
	begin := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)
	end := begin.Add(time.Hour)
	ctx := context.Background()

	in := services.WorkoutInput{
		Begintime: begin,
		Endtime:   end,
		ExerciseLogs: []services.ExerciseLogInput{
			{
				ID:             int64Ptr(10),
				ExerciseTypeID: 1,
				Sets: []services.ExerciseSetInput{
					{ID: int64Ptr(100), Reps: 8, WeightKg: 100, RIR: 2},
					{ID: int64Ptr(101), Reps: 8, WeightKg: 100, RIR: 1},
				},
			},
		},
	}

	workout := &models.WorkoutLogDB{ID: 5, UserID: callerID, Begintime: begin, Endtime: end}
	m.reader.EXPECT().GetOwned(gomock.Any(), callerID, int64(5)).Return(workout, nil).Times(2)

	m.typeReader.EXPECT().
		GetVisibleByID(gomock.Any(), gomock.Any(), int64(1)).
		Return(&models.ExerciseTypeDB{ID: 1}, nil)

	storedSets := []models.ExerciseSetDB{
		{ID: 100, ExerciseLogID: 10, Reps: 8, WeightKg: 100, RIR: 2},
		{ID: 101, ExerciseLogID: 10, Reps: 8, WeightKg: 100, RIR: 1},
	}
	m.logReader.EXPECT().ListByWorkout(gomock.Any(), int64(5)).
		Return([]models.ExerciseLogDB{{ID: 10, WorkoutLogID: 5, ExerciseTypeID: 1}}, nil)
	m.setReader.EXPECT().ListByExerciseLog(gomock.Any(), int64(10)).Return(storedSets, nil)

	// Everything matched by identifier, so the plan carries only in-place
	// updates. No Delete or Insert expectation is registered: any such call
	// fails the test.
	passthroughTx(m.txRunner)
	m.writer.EXPECT().UpdateTimes(gomock.Any(), callerID, int64(5), begin, end).Return(true, nil)
	m.logWriter.EXPECT().UpdateType(gomock.Any(), int64(10), int64(1)).Return(nil)
	m.setWriter.EXPECT().Update(gomock.Any(), int64(100), 8, 100.0, 2).Return(nil)
	m.setWriter.EXPECT().Update(gomock.Any(), int64(101), 8, 100.0, 1).Return(nil)

	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	m.logReader.EXPECT().ListDetailByWorkout(gomock.Any(), int64(5)).
		Return([]models.ExerciseLogDetail{{ID: 10, ExerciseTypeID: 1}}, nil)
	m.setReader.EXPECT().ListByWorkout(gomock.Any(), int64(5)).Return(storedSets, nil)

	detail, err := svc.Update(ctx, callerID, 5, in)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), detail.ID)
	assert.Len(t, detail.ExerciseLogs, 1)
	assert.Equal(t, storedSets, detail.ExerciseLogs[0].Sets)
}

func TestWorkoutService_Update_UnknownLogID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newWorkoutService(ctrl)

	callerID := uuid.New()
	begin := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)

	in := services.WorkoutInput{
		Begintime:    begin,
		Endtime:      begin.Add(time.Hour),
		ExerciseLogs: []services.ExerciseLogInput{{ID: int64Ptr(999), ExerciseTypeID: 1}},
	}

	m.reader.EXPECT().GetOwned(gomock.Any(), callerID, int64(5)).
		Return(&models.WorkoutLogDB{ID: 5, UserID: callerID}, nil)
	m.typeReader.EXPECT().
		GetVisibleByID(gomock.Any(), gomock.Any(), int64(1)).
		Return(&models.ExerciseTypeDB{ID: 1}, nil)
	m.logReader.EXPECT().ListByWorkout(gomock.Any(), int64(5)).
		Return([]models.ExerciseLogDB{{ID: 10, WorkoutLogID: 5, ExerciseTypeID: 1}}, nil)

	_, err := svc.Update(context.Background(), callerID, 5, in)
	errs, ok := validation.AsErrors(err)
	assert.True(t, ok)
	assert.Equal(t, []string{"Identifier does not belong to this resource."}, errs["exercise_logs"])
}

func TestWorkoutService_Update_NotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newWorkoutService(ctrl)

	callerID := uuid.New()
	m.reader.EXPECT().GetOwned(gomock.Any(), callerID, int64(5)).Return(nil, nil)

	begin := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)
	_, err := svc.Update(context.Background(), callerID, 5, services.WorkoutInput{
		Begintime: begin,
		Endtime:   begin.Add(time.Hour),
	})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestWorkoutService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newWorkoutService(ctrl)

	callerID := uuid.New()
	ctx := context.Background()

	t.Run("success publishes event", func(t *testing.T) {
		m.writer.EXPECT().Delete(gomock.Any(), callerID, int64(5)).Return(true, nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Delete(ctx, callerID, 5))
	})

	t.Run("not found", func(t *testing.T) {
		m.writer.EXPECT().Delete(gomock.Any(), callerID, int64(6)).Return(false, nil)

		assert.ErrorIs(t, svc.Delete(ctx, callerID, 6), services.ErrNotFound)
	})
}
