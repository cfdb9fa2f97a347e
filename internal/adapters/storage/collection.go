// Package storage serializa colecciones completas sobre un kv.Store.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"growbraz/internal/ports/kv"
)

// Claves de las dos colecciones persistidas.
const (
	KeySpaces = "growbraz_spaces"
	KeyPlants = "growbraz_plants"
)

// Collection guarda un []T entero bajo una sola clave, como JSON.
// Cada Save reescribe la colección completa (write-through, sin incrementales).
type Collection[T any] struct {
	store kv.Store
	key   string
}

func NewCollection[T any](store kv.Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// Load devuelve found=false si la clave nunca se escribió.
// No valida esquema: un campo con tipo equivocado queda en su valor cero y
// el resto de los registros pasa tal cual.
func (c *Collection[T]) Load(ctx context.Context) ([]T, bool, error) {
	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load %s: %w", c.key, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		// items == nil: la raíz ni siquiera era un array
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) || items == nil {
			return nil, false, fmt.Errorf("decode %s: %w", c.key, err)
		}
	}
	if items == nil {
		items = []T{}
	}
	return items, true, nil
}

func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.Put(ctx, c.key, b); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}
