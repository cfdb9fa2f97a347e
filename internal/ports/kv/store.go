package kv

import (
	"context"
	"errors"
)

// ErrNotFound indica que la clave nunca fue escrita.
var ErrNotFound = errors.New("kv: key not found")

// Store persiste blobs completos por clave (una clave por colección).
// Put reemplaza el valor entero; no hay escrituras parciales.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
