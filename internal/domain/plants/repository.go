package plants

import "context"

// Repository persiste la colección completa (logs embebidos).
type Repository interface {
	Load(ctx context.Context) ([]Plant, bool, error)
	Save(ctx context.Context, items []Plant) error
}
