package growspaces

import "context"

// Repository persiste la colección completa.
// Load devuelve found=false cuando nunca se guardó nada.
type Repository interface {
	Load(ctx context.Context) ([]GrowSpace, bool, error)
	Save(ctx context.Context, items []GrowSpace) error
}
