package order

import (
	"context"

	"webstore/internal/domain"
	cartrepo "webstore/internal/repository/cart"
	orderrepo "webstore/internal/repository/order"
	userrepo "webstore/internal/repository/user"

	"github.com/shopspring/decimal"
)

// Service finalizes carts into orders and lists order history.
type Service struct {
	users  userRepo
	carts  cartRepo
	orders orderRepo
}

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type cartRepo interface {
	GetByUser(ctx context.Context, userID int64) (*domain.Cart, error)
}

type orderRepo interface {
	Create(ctx context.Context, userID int64, items []domain.Item, total decimal.Decimal) (*domain.UserOrder, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.UserOrder, error)
}

func New(users userrepo.Repository, carts cartrepo.Repository, orders orderrepo.Repository) *Service {
	return &Service{users: users, carts: carts, orders: orders}
}

// Submit snapshots the user's current cart into a new order. The cart itself
// is left untouched.
func (s *Service) Submit(ctx context.Context, username string) (*domain.UserOrder, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	cart, err := s.carts.GetByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return s.orders.Create(ctx, u.ID, cart.Items, cart.Total)
}

// History returns all orders of the user, oldest first, possibly empty.
func (s *Service) History(ctx context.Context, username string) ([]domain.UserOrder, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.UserOrder{}
	}
	return orders, nil
}
