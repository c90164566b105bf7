package cart

import (
	"context"
	"errors"
	"testing"

	"webstore/internal/domain"

	"github.com/shopspring/decimal"
)

type stubUserRepo struct {
	user *domain.User
	err  error
}

func (s *stubUserRepo) Create(_ context.Context, _, _ string) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubUserRepo) GetByUsername(_ context.Context, _ string) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	return s.user, s.err
}

type stubItemRepo struct {
	item *domain.Item
	err  error
}

func (s *stubItemRepo) List(_ context.Context) ([]domain.Item, error) {
	return nil, nil
}

func (s *stubItemRepo) GetByID(_ context.Context, _ int64) (*domain.Item, error) {
	return s.item, s.err
}

func (s *stubItemRepo) GetByName(_ context.Context, _ string) ([]domain.Item, error) {
	return nil, nil
}

func (s *stubItemRepo) Create(_ context.Context, it domain.Item) (*domain.Item, error) {
	return &it, nil
}

type stubCartRepo struct {
	getResults       []*domain.Cart
	getErr           error
	getCalls         int
	addErr           error
	removeErr        error
	lastAddCartID    int64
	lastAddItemID    int64
	lastAddQty       int
	lastRemoveCartID int64
	lastRemoveItemID int64
	lastRemoveQty    int
}

func (s *stubCartRepo) GetByUser(_ context.Context, _ int64) (*domain.Cart, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	var res *domain.Cart
	if len(s.getResults) > 0 {
		idx := s.getCalls
		if idx >= len(s.getResults) {
			idx = len(s.getResults) - 1
		}
		res = s.getResults[idx]
	}
	s.getCalls++
	return res, nil
}

func (s *stubCartRepo) AddEntries(_ context.Context, cartID, itemID int64, quantity int) error {
	s.lastAddCartID = cartID
	s.lastAddItemID = itemID
	s.lastAddQty = quantity
	return s.addErr
}

func (s *stubCartRepo) RemoveEntries(_ context.Context, cartID, itemID int64, quantity int) error {
	s.lastRemoveCartID = cartID
	s.lastRemoveItemID = itemID
	s.lastRemoveQty = quantity
	return s.removeErr
}

func TestAdd_AppendsQuantityEntries(t *testing.T) {
	item := &domain.Item{ID: 3, Name: "Widget", Price: decimal.NewFromInt(100)}
	empty := &domain.Cart{ID: 5, UserID: 7, Items: []domain.Item{}, Total: decimal.Zero}
	filled := &domain.Cart{
		ID:     5,
		UserID: 7,
		Items:  []domain.Item{*item, *item},
		Total:  decimal.NewFromInt(200),
	}
	carts := &stubCartRepo{getResults: []*domain.Cart{empty, filled}}
	svc := New(&stubUserRepo{user: &domain.User{ID: 7, Username: "test"}}, &stubItemRepo{item: item}, carts)

	cart, err := svc.Add(context.Background(), ModifyInput{Username: "test", ItemID: 3, Quantity: 2})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if carts.lastAddCartID != 5 || carts.lastAddItemID != 3 || carts.lastAddQty != 2 {
		t.Fatalf("unexpected AddEntries args cart=%d item=%d qty=%d",
			carts.lastAddCartID, carts.lastAddItemID, carts.lastAddQty)
	}
	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(cart.Items))
	}
	if !cart.Total.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected total 200, got %s", cart.Total)
	}
}

func TestAdd_UnknownUser(t *testing.T) {
	svc := New(&stubUserRepo{err: domain.ErrNotFound}, &stubItemRepo{}, &stubCartRepo{})

	_, err := svc.Add(context.Background(), ModifyInput{Username: "missing", ItemID: 1, Quantity: 1})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdd_UnknownItem(t *testing.T) {
	svc := New(
		&stubUserRepo{user: &domain.User{ID: 7}},
		&stubItemRepo{err: domain.ErrNotFound},
		&stubCartRepo{},
	)

	_, err := svc.Add(context.Background(), ModifyInput{Username: "test", ItemID: 99, Quantity: 1})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemove_DeletesQuantityEntries(t *testing.T) {
	item := &domain.Item{ID: 3, Name: "Widget", Price: decimal.NewFromInt(100)}
	filled := &domain.Cart{
		ID:     5,
		UserID: 7,
		Items:  []domain.Item{*item, *item},
		Total:  decimal.NewFromInt(200),
	}
	empty := &domain.Cart{ID: 5, UserID: 7, Items: []domain.Item{}, Total: decimal.Zero}
	carts := &stubCartRepo{getResults: []*domain.Cart{filled, empty}}
	svc := New(&stubUserRepo{user: &domain.User{ID: 7, Username: "test"}}, &stubItemRepo{item: item}, carts)

	cart, err := svc.Remove(context.Background(), ModifyInput{Username: "test", ItemID: 3, Quantity: 2})
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if carts.lastRemoveCartID != 5 || carts.lastRemoveItemID != 3 || carts.lastRemoveQty != 2 {
		t.Fatalf("unexpected RemoveEntries args cart=%d item=%d qty=%d",
			carts.lastRemoveCartID, carts.lastRemoveItemID, carts.lastRemoveQty)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %d entries", len(cart.Items))
	}
	if !cart.Total.IsZero() {
		t.Fatalf("expected zero total, got %s", cart.Total)
	}
}

func TestRemove_UnknownItem(t *testing.T) {
	svc := New(
		&stubUserRepo{user: &domain.User{ID: 7}},
		&stubItemRepo{err: domain.ErrNotFound},
		&stubCartRepo{},
	)

	_, err := svc.Remove(context.Background(), ModifyInput{Username: "test", ItemID: 99, Quantity: 1})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
