package order

import (
	"context"

	"webstore/internal/domain"

	"github.com/shopspring/decimal"
)

// Repository persists submitted orders. Create writes the item snapshot rows
// together with the order; nothing updates an order after that.
type Repository interface {
	Create(ctx context.Context, userID int64, items []domain.Item, total decimal.Decimal) (*domain.UserOrder, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.UserOrder, error)
}
