package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMeasurementRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()

	userRepo := NewUserWriteRepository(db, nil)
	aliceID, err := userRepo.Save(ctx, "alice", "alice@example.com", "hash")
	assert.NoError(t, err)
	bobID, err := userRepo.Save(ctx, "bob", "bob@example.com", "hash")
	assert.NoError(t, err)

	readRepo := NewMeasurementReadRepository(db)
	writeRepo := NewMeasurementWriteRepository(db, nil)

	weightTypeID := measurementTypeID(t, db, "Bodyweight")
	waistTypeID := measurementTypeID(t, db, "Waist")

	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	weightID, err := writeRepo.Insert(ctx, aliceID, weightTypeID, 82.5, date)
	assert.NoError(t, err)
	_, err = writeRepo.Insert(ctx, aliceID, waistTypeID, 80, date.AddDate(0, 0, 1))
	assert.NoError(t, err)

	t.Run("GetOwned embeds the type", func(t *testing.T) {
		m, err := readRepo.GetOwned(ctx, aliceID, weightID)
		assert.NoError(t, err)
		assert.NotNil(t, m)
		assert.Equal(t, "Bodyweight", m.TypeName)
		assert.Equal(t, "kg", m.TypeUnit)
		assert.Equal(t, 82.5, m.Value)
	})

	t.Run("GetOwned by another user", func(t *testing.T) {
		m, err := readRepo.GetOwned(ctx, bobID, weightID)
		assert.NoError(t, err)
		assert.Nil(t, m)
	})

	t.Run("ListOwned only shows the caller's rows", func(t *testing.T) {
		measurements, err := readRepo.ListOwned(ctx, aliceID)
		assert.NoError(t, err)
		assert.Len(t, measurements, 2)

		measurements, err = readRepo.ListOwned(ctx, bobID)
		assert.NoError(t, err)
		assert.Empty(t, measurements)
	})

	t.Run("Update scoped to owner", func(t *testing.T) {
		updated, err := writeRepo.Update(ctx, bobID, weightID, weightTypeID, 70, date)
		assert.NoError(t, err)
		assert.False(t, updated)

		updated, err = writeRepo.Update(ctx, aliceID, weightID, weightTypeID, 83, date)
		assert.NoError(t, err)
		assert.True(t, updated)

		m, err := readRepo.GetOwned(ctx, aliceID, weightID)
		assert.NoError(t, err)
		assert.Equal(t, 83.0, m.Value)
	})

	t.Run("Delete scoped to owner", func(t *testing.T) {
		deleted, err := writeRepo.Delete(ctx, bobID, weightID)
		assert.NoError(t, err)
		assert.False(t, deleted)

		deleted, err = writeRepo.Delete(ctx, aliceID, weightID)
		assert.NoError(t, err)
		assert.True(t, deleted)

		m, err := readRepo.GetOwned(ctx, aliceID, weightID)
		assert.NoError(t, err)
		assert.Nil(t, m)
	})
}
