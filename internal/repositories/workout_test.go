package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkoutRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()

	userRepo := NewUserWriteRepository(db, nil)
	ownerID, err := userRepo.Save(ctx, "owner", "owner@example.com", "hash")
	assert.NoError(t, err)
	otherID, err := userRepo.Save(ctx, "other", "other@example.com", "hash")
	assert.NoError(t, err)

	readRepo := NewWorkoutReadRepository(db)
	writeRepo := NewWorkoutWriteRepository(db, nil)
	logWriteRepo := NewExerciseLogWriteRepository(db, nil)
	logReadRepo := NewExerciseLogReadRepository(db)
	setWriteRepo := NewExerciseSetWriteRepository(db, nil)
	setReadRepo := NewExerciseSetReadRepository(db)

	begintime := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	endtime := begintime.Add(time.Hour)

	workoutID, err := writeRepo.Insert(ctx, ownerID, begintime, endtime)
	assert.NoError(t, err)

	benchID := exerciseTypeID(t, db, "Bench Press")
	squatID := exerciseTypeID(t, db, "Squat")

	benchLogID, err := logWriteRepo.Insert(ctx, workoutID, benchID)
	assert.NoError(t, err)
	_, err = logWriteRepo.Insert(ctx, workoutID, squatID)
	assert.NoError(t, err)

	setID, err := setWriteRepo.Insert(ctx, benchLogID, 8, 100.0, 2)
	assert.NoError(t, err)

	t.Run("GetOwned", func(t *testing.T) {
		workout, err := readRepo.GetOwned(ctx, ownerID, workoutID)
		assert.NoError(t, err)
		assert.NotNil(t, workout)
		assert.True(t, workout.Begintime.Equal(begintime))
	})

	t.Run("GetOwned by another user", func(t *testing.T) {
		workout, err := readRepo.GetOwned(ctx, otherID, workoutID)
		assert.NoError(t, err)
		assert.Nil(t, workout)
	})

	t.Run("ListOwned newest first", func(t *testing.T) {
		laterID, err := writeRepo.Insert(ctx, ownerID, begintime.Add(24*time.Hour), endtime.Add(24*time.Hour))
		assert.NoError(t, err)

		workouts, err := readRepo.ListOwned(ctx, ownerID)
		assert.NoError(t, err)
		assert.Len(t, workouts, 2)
		assert.Equal(t, laterID, workouts[0].ID)

		deleted, err := writeRepo.Delete(ctx, ownerID, laterID)
		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("ListDetailByWorkout embeds the catalog type", func(t *testing.T) {
		details, err := logReadRepo.ListDetailByWorkout(ctx, workoutID)
		assert.NoError(t, err)
		assert.Len(t, details, 2)
		assert.Equal(t, benchLogID, details[0].ID)
		assert.Equal(t, "Bench Press", details[0].TypeName)
		assert.Equal(t, "chest", string(details[0].TypeMuscleGroup))
	})

	t.Run("duplicate type in one workout", func(t *testing.T) {
		_, err := logWriteRepo.Insert(ctx, workoutID, benchID)
		assert.Error(t, err)
		assert.True(t, IsUniqueViolation(err))
	})

	t.Run("set ownership chain", func(t *testing.T) {
		set, err := setReadRepo.GetOwned(ctx, ownerID, setID)
		assert.NoError(t, err)
		assert.NotNil(t, set)
		assert.Equal(t, 8, set.Reps)
		assert.Equal(t, 100.0, set.WeightKg)

		set, err = setReadRepo.GetOwned(ctx, otherID, setID)
		assert.NoError(t, err)
		assert.Nil(t, set)
	})

	t.Run("UpdateTimes scoped to owner", func(t *testing.T) {
		updated, err := writeRepo.UpdateTimes(ctx, otherID, workoutID, begintime, endtime.Add(time.Hour))
		assert.NoError(t, err)
		assert.False(t, updated)

		updated, err = writeRepo.UpdateTimes(ctx, ownerID, workoutID, begintime, endtime.Add(time.Hour))
		assert.NoError(t, err)
		assert.True(t, updated)
	})

	t.Run("delete cascades to logs and sets", func(t *testing.T) {
		deleted, err := writeRepo.Delete(ctx, ownerID, workoutID)
		assert.NoError(t, err)
		assert.True(t, deleted)

		logs, err := logReadRepo.ListByWorkout(ctx, workoutID)
		assert.NoError(t, err)
		assert.Empty(t, logs)

		sets, err := setReadRepo.ListByExerciseLog(ctx, benchLogID)
		assert.NoError(t, err)
		assert.Empty(t, sets)
	})
}
