// Package kv implements the storage substrate: named collections persisted
// as whole JSON documents under namespaced keys, with interchangeable
// in-memory, Redis and Postgres backends.
package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Store.Get for absent keys.
var ErrKeyNotFound = errors.New("kv: key not found")

// keyPrefix namespaces every key this application owns. Clear only removes
// keys inside the namespace.
const keyPrefix = "glint:"

func namespaced(key string) string {
	return keyPrefix + key
}

// Store is the raw key-value contract. Values are opaque byte snapshots:
// a Set/Get round trip never shares mutable state with the caller.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
