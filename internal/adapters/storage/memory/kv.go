package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"growbraz/internal/ports/kv"
)

type kvStore struct {
	mu    sync.RWMutex
	byKey map[string][]byte
}

// NewKV crea un kv.Store en memoria (vive lo que vive el proceso).
func NewKV() kv.Store {
	return &kvStore{
		byKey: make(map[string][]byte),
	}
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byKey[key]
	if !ok {
		return nil, kv.ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *kvStore) Put(ctx context.Context, key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("key required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// copia: el caller puede reutilizar el slice
	v := make([]byte, len(value))
	copy(v, value)
	s.byKey[key] = v
	return nil
}
