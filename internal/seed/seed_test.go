package seed_test

import (
	"context"
	"testing"

	"glint-backend/internal/domain"
	"glint-backend/internal/repository/kv"
	"glint-backend/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("Should populate a fresh store", func(t *testing.T) {
		store := kv.NewMemoryStore()
		require.NoError(t, seed.Initialize(ctx, store))

		users, err := kv.NewUserRepository(store).GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "Alex Rivera", users[0].Name)

		posts, err := kv.NewPostRepository(store).GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, posts, 2)

		jobs, err := kv.NewJobRepository(store).GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, jobs, 1)
	})

	t.Run("Should never overwrite live data", func(t *testing.T) {
		store := kv.NewMemoryStore()
		require.NoError(t, seed.Initialize(ctx, store))

		userRepo := kv.NewUserRepository(store)
		require.NoError(t, userRepo.Save(ctx, &domain.User{ID: "user3", Name: "New Hire"}))

		require.NoError(t, seed.Initialize(ctx, store))

		users, err := userRepo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 3)
	})
}
