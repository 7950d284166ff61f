package draft

import "context"

// Repository is the injected draft store. Implementations must return
// copies so callers can mutate a draft and only commit it via Save.
type Repository interface {
	GetByID(ctx context.Context, draftID string) (Draft, bool, error)
	Save(ctx context.Context, d Draft) error
	List(ctx context.Context) ([]Draft, error)
	Delete(ctx context.Context, draftID string) error
}
