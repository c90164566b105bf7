package cart

import (
	"context"

	"webstore/internal/domain"
	cartrepo "webstore/internal/repository/cart"
	itemrepo "webstore/internal/repository/item"
	userrepo "webstore/internal/repository/user"
)

// Service mutates per-user carts.
type Service struct {
	users userRepo
	items itemRepo
	carts cartRepo
}

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type itemRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
}

type cartRepo interface {
	GetByUser(ctx context.Context, userID int64) (*domain.Cart, error)
	AddEntries(ctx context.Context, cartID, itemID int64, quantity int) error
	RemoveEntries(ctx context.Context, cartID, itemID int64, quantity int) error
}

func New(users userrepo.Repository, items itemrepo.Repository, carts cartrepo.Repository) *Service {
	return &Service{users: users, items: items, carts: carts}
}

// ModifyInput captures the add/remove request payload.
type ModifyInput struct {
	Username string `json:"username"`
	ItemID   int64  `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// Add appends the item to the user's cart once per quantity and returns the
// cart with its recomputed total.
func (s *Service) Add(ctx context.Context, in ModifyInput) (*domain.Cart, error) {
	cart, itemID, err := s.resolve(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := s.carts.AddEntries(ctx, cart.ID, itemID, in.Quantity); err != nil {
		return nil, err
	}
	return s.carts.GetByUser(ctx, cart.UserID)
}

// Remove deletes up to quantity occurrences of the item from the user's cart.
// Asking for more than are present removes the ones there are.
func (s *Service) Remove(ctx context.Context, in ModifyInput) (*domain.Cart, error) {
	cart, itemID, err := s.resolve(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := s.carts.RemoveEntries(ctx, cart.ID, itemID, in.Quantity); err != nil {
		return nil, err
	}
	return s.carts.GetByUser(ctx, cart.UserID)
}

// resolve looks up the user, the item, and the user's cart; a missing user or
// item surfaces as domain.ErrNotFound.
func (s *Service) resolve(ctx context.Context, in ModifyInput) (*domain.Cart, int64, error) {
	u, err := s.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, 0, err
	}
	it, err := s.items.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, 0, err
	}
	cart, err := s.carts.GetByUser(ctx, u.ID)
	if err != nil {
		return nil, 0, err
	}
	return cart, it.ID, nil
}
