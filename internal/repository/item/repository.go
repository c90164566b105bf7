package item

import (
	"context"

	"webstore/internal/domain"
)

// Repository persists and fetches catalog items. Create exists for the seed
// and importer tools; the HTTP surface is read-only.
type Repository interface {
	List(ctx context.Context) ([]domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	GetByName(ctx context.Context, name string) ([]domain.Item, error)
	Create(ctx context.Context, it domain.Item) (*domain.Item, error)
}
