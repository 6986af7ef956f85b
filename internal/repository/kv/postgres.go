package kv

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists collections in a single key/value table. The rest
// of the engine treats the substrate as opaque, so no per-entity schema is
// needed.
type PostgresStore struct {
	pool *pgxpool.Pool
}

const createKVTable = `
CREATE TABLE IF NOT EXISTS kv_entries (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	if _, err := pool.Exec(ctx, createKVTable); err != nil {
		return nil, err
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM kv_entries WHERE key = $1`, namespaced(key)).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		namespaced(key), value)
	return err
}

func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM kv_entries WHERE key = $1`, namespaced(key))
	return err
}

func (s *PostgresStore) Clear(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM kv_entries WHERE key LIKE $1`, keyPrefix+"%")
	return err
}
