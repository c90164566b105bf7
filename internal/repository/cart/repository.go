package cart

import (
	"context"

	"webstore/internal/domain"
)

// Repository persists and fetches carts. Entry mutations run in a transaction
// and recompute the stored total from the remaining entries, so the
// total-equals-sum-of-prices invariant holds in every committed state.
type Repository interface {
	GetByUser(ctx context.Context, userID int64) (*domain.Cart, error)
	AddEntries(ctx context.Context, cartID, itemID int64, quantity int) error
	RemoveEntries(ctx context.Context, cartID, itemID int64, quantity int) error
}
