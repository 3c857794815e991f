package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Trkcnl/twacktwack/internal/models"
)

func TestExerciseTypeRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()

	userRepo := NewUserWriteRepository(db, nil)
	aliceID, err := userRepo.Save(ctx, "alice", "alice@example.com", "hash")
	assert.NoError(t, err)
	bobID, err := userRepo.Save(ctx, "bob", "bob@example.com", "hash")
	assert.NoError(t, err)

	readRepo := NewExerciseTypeReadRepository(db)
	writeRepo := NewExerciseTypeWriteRepository(db, nil)

	builtins, err := readRepo.ListVisible(ctx, nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, builtins)
	for _, et := range builtins {
		assert.False(t, et.IsCustom)
	}

	customID, err := writeRepo.Insert(ctx, aliceID, "Cable Fly", models.Chest)
	assert.NoError(t, err)

	t.Run("owner sees the custom type", func(t *testing.T) {
		types, err := readRepo.ListVisible(ctx, &aliceID)
		assert.NoError(t, err)
		assert.Len(t, types, len(builtins)+1)
	})

	t.Run("custom type hidden from other users", func(t *testing.T) {
		types, err := readRepo.ListVisible(ctx, &bobID)
		assert.NoError(t, err)
		assert.Len(t, types, len(builtins))

		et, err := readRepo.GetVisibleByID(ctx, &bobID, customID)
		assert.NoError(t, err)
		assert.Nil(t, et)
	})

	t.Run("GetVisibleByID for the owner", func(t *testing.T) {
		et, err := readRepo.GetVisibleByID(ctx, &aliceID, customID)
		assert.NoError(t, err)
		assert.NotNil(t, et)
		assert.Equal(t, "Cable Fly", et.Name)
		assert.True(t, et.IsCustom)
	})

	t.Run("name unique per owner", func(t *testing.T) {
		_, err := writeRepo.Insert(ctx, aliceID, "Cable Fly", models.Chest)
		assert.Error(t, err)
		assert.True(t, IsUniqueViolation(err))

		_, err = writeRepo.Insert(ctx, bobID, "Cable Fly", models.Chest)
		assert.NoError(t, err)
	})

	t.Run("clash with a builtin name", func(t *testing.T) {
		_, err := writeRepo.Insert(ctx, aliceID, "Bench Press", models.Chest)
		assert.NoError(t, err)
	})
}
