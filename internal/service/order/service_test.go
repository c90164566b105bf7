package order

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

type stubCartRepo struct {
	cart *domain.Cart
	err  error
}

func (s *stubCartRepo) GetByUser(_ context.Context, _ int64) (*domain.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartRepo) AddEntries(_ context.Context, _, _ int64, _ int) error {
	return nil
}

func (s *stubCartRepo) RemoveEntries(_ context.Context, _, _ int64, _ int) error {
	return nil
}

type stubOrderRepo struct {
	created     *domain.UserOrder
	createErr   error
	lastUserID  int64
	lastItems   []domain.Item
	lastTotal   decimal.Decimal
	listResults []domain.UserOrder
	listErr     error
}

func (s *stubOrderRepo) Create(_ context.Context, userID int64, items []domain.Item, total decimal.Decimal) (*domain.UserOrder, error) {
	s.lastUserID = userID
	s.lastItems = items
	s.lastTotal = total
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	return &domain.UserOrder{ID: 1, UserID: userID, Items: items, Total: total}, nil
}

func (s *stubOrderRepo) ListByUser(_ context.Context, _ int64) ([]domain.UserOrder, error) {
	return s.listResults, s.listErr
}

func TestSubmit_SnapshotsCart(t *testing.T) {
	item := domain.Item{ID: 3, Name: "Widget", Price: decimal.NewFromInt(100)}
	cart := &domain.Cart{
		ID:     5,
		UserID: 7,
		Items:  []domain.Item{item, item},
		Total:  decimal.NewFromInt(200),
	}
	orders := &stubOrderRepo{}
	svc := New(&stubUserRepo{user: &domain.User{ID: 7, Username: "test"}}, &stubCartRepo{cart: cart}, orders)

	o, err := svc.Submit(context.Background(), "test")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if orders.lastUserID != 7 {
		t.Fatalf("expected user 7, got %d", orders.lastUserID)
	}
	if len(orders.lastItems) != 2 {
		t.Fatalf("expected 2 snapshot items, got %d", len(orders.lastItems))
	}
	if !orders.lastTotal.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected total 200, got %s", orders.lastTotal)
	}
	if len(o.Items) != 2 || !o.Total.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("unexpected order %+v", o)
	}
}

func TestSubmit_UnknownUser(t *testing.T) {
	svc := New(&stubUserRepo{err: domain.ErrNotFound}, &stubCartRepo{}, &stubOrderRepo{})

	_, err := svc.Submit(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHistory_EmptyIsNotAnError(t *testing.T) {
	svc := New(&stubUserRepo{user: &domain.User{ID: 7}}, &stubCartRepo{}, &stubOrderRepo{})

	orders, err := svc.History(context.Background(), "test")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if orders == nil || len(orders) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", orders)
	}
}

func TestHistory_UnknownUser(t *testing.T) {
	svc := New(&stubUserRepo{err: domain.ErrNotFound}, &stubCartRepo{}, &stubOrderRepo{})

	_, err := svc.History(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
