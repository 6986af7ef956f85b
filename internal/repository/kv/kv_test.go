package kv_test

import (
	"context"
	"testing"

	"glint-backend/internal/repository/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return ErrKeyNotFound for absent keys", func(t *testing.T) {
		store := kv.NewMemoryStore()
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, kv.ErrKeyNotFound)
	})

	t.Run("Should round-trip without aliasing stored bytes", func(t *testing.T) {
		store := kv.NewMemoryStore()
		payload := []byte(`["a"]`)
		require.NoError(t, store.Set(ctx, "k", payload))

		payload[2] = 'X' // caller mutates its own buffer afterwards

		got, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte(`["a"]`), got)

		got[2] = 'Y' // and mutating the returned copy changes nothing
		again, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte(`["a"]`), again)
	})

	t.Run("Should remove keys", func(t *testing.T) {
		store := kv.NewMemoryStore()
		require.NoError(t, store.Set(ctx, "k", []byte(`1`)))
		require.NoError(t, store.Remove(ctx, "k"))
		_, err := store.Get(ctx, "k")
		assert.ErrorIs(t, err, kv.ErrKeyNotFound)
	})

	t.Run("Should clear every owned key", func(t *testing.T) {
		store := kv.NewMemoryStore()
		require.NoError(t, store.Set(ctx, "a", []byte(`1`)))
		require.NoError(t, store.Set(ctx, "b", []byte(`2`)))
		require.NoError(t, store.Clear(ctx))

		_, err := store.Get(ctx, "a")
		assert.ErrorIs(t, err, kv.ErrKeyNotFound)
		_, err = store.Get(ctx, "b")
		assert.ErrorIs(t, err, kv.ErrKeyNotFound)
	})
}

type widget struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestCollection(t *testing.T) {
	ctx := context.Background()

	t.Run("Should yield an empty slice for an absent key", func(t *testing.T) {
		c := kv.NewCollection[widget](kv.NewMemoryStore(), "widgets")
		items, err := c.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)

		ok, err := c.Exists(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Should round-trip typed items", func(t *testing.T) {
		c := kv.NewCollection[widget](kv.NewMemoryStore(), "widgets")
		require.NoError(t, c.Replace(ctx, []widget{{ID: "w1", Name: "gear"}}))

		items, err := c.All(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "gear", items[0].Name)

		ok, err := c.Exists(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Should fail open on a corrupt payload", func(t *testing.T) {
		store := kv.NewMemoryStore()
		require.NoError(t, store.Set(ctx, "widgets", []byte(`{not json`)))

		c := kv.NewCollection[widget](store, "widgets")
		items, err := c.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}
