package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"growbraz/internal/ports/kv"
)

// KVStore guarda cada colección como una fila JSONB en state.
type KVStore struct {
	db *sql.DB
}

// NewKVStore asegura la tabla state y devuelve el store.
func NewKVStore(ctx context.Context, db *sql.DB) (*KVStore, error) {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload JSONB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("ensure state table: %w", err)
	}
	return &KVStore{db: db}, nil
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, kv.ErrNotFound
	}

	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload::text FROM state WHERE bucket = $1`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, kv.ErrNotFound
		}
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return []byte(payload), nil
}

func (s *KVStore) Put(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO state (bucket, payload) VALUES ($1, $2::jsonb)
		ON CONFLICT (bucket) DO UPDATE SET payload = EXCLUDED.payload
	`, key, string(value)); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}
