package player

import "context"

// Repository describes catalog reads needed by use cases. The catalog is
// immutable at runtime; there are no write operations.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
}
