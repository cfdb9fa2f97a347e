package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"growbraz/internal/ports/kv"
)

// Requiere una base real: TEST_DB_DSN=postgres://... go test ./...
func TestKVStore_Integration(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	ctx := context.Background()
	db, err := Open(ctx, dsn, DefaultPool())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	s, err := NewKVStore(ctx, db)
	if err != nil {
		t.Fatalf("NewKVStore: %v", err)
	}

	key := "growbraz_test_" + t.Name()
	t.Cleanup(func() { _, _ = db.Exec(`DELETE FROM state WHERE bucket = $1`, key) })

	if _, err := s.Get(ctx, key); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Put(ctx, key, []byte(`[{"id":"1","lightPower":240}]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	raw, err := s.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	// JSONB normaliza espacios/orden; comparamos por valor.
	var got []map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 1 || got[0]["id"] != "1" || got[0]["lightPower"] != float64(240) {
		t.Fatalf("unexpected payload: %s", raw)
	}
}

func TestOpen_EmptyDSN(t *testing.T) {
	if _, err := Open(context.Background(), "  ", DefaultPool()); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
}
