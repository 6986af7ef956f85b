package kv

import (
	"context"
	"encoding/json"
	"errors"

	"glint-backend/pkg/logger"
)

// Collection is a typed named collection stored as one serialized document.
// A corrupt payload decodes fail-open to an empty collection rather than
// propagating an error from a read.
type Collection[T any] struct {
	store Store
	key   string
}

func NewCollection[T any](store Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// All returns every item in the collection. Absent and corrupt keys both
// yield an empty slice.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.key)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		logger.Log.Warn("corrupt collection payload, treating as empty",
			"collection", c.key, "error", err)
		return nil, nil
	}
	return items, nil
}

// Replace overwrites the whole collection.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, c.key, raw)
}

// Exists reports whether the collection key is present at all, regardless
// of content. Seeding uses it to avoid overwriting live data.
func (c *Collection[T]) Exists(ctx context.Context) (bool, error) {
	_, err := c.store.Get(ctx, c.key)
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
