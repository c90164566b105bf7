package httpserver

import (
	"context"
	"io"
	"log"

	"webstore/internal/domain"
	cartsvc "webstore/internal/service/cart"
	usersvc "webstore/internal/service/user"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubUserService struct {
	user       *domain.User
	createErr  error
	getErr     error
	lastCreate usersvc.CreateInput
	lastGetID  int64
	lastName   string
}

func (s *stubUserService) Create(_ context.Context, in usersvc.CreateInput) (*domain.User, error) {
	s.lastCreate = in
	return s.user, s.createErr
}

func (s *stubUserService) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	s.lastName = username
	return s.user, s.getErr
}

func (s *stubUserService) GetByID(_ context.Context, id int64) (*domain.User, error) {
	s.lastGetID = id
	return s.user, s.getErr
}

type stubItemService struct {
	items     []domain.Item
	item      *domain.Item
	listErr   error
	byIDErr   error
	byNameErr error
}

func (s *stubItemService) List(_ context.Context) ([]domain.Item, error) {
	return s.items, s.listErr
}

func (s *stubItemService) GetByID(_ context.Context, _ int64) (*domain.Item, error) {
	return s.item, s.byIDErr
}

func (s *stubItemService) GetByName(_ context.Context, _ string) ([]domain.Item, error) {
	return s.items, s.byNameErr
}

type stubCartService struct {
	cart       *domain.Cart
	addErr     error
	removeErr  error
	lastAdd    cartsvc.ModifyInput
	lastRemove cartsvc.ModifyInput
}

func (s *stubCartService) Add(_ context.Context, in cartsvc.ModifyInput) (*domain.Cart, error) {
	s.lastAdd = in
	return s.cart, s.addErr
}

func (s *stubCartService) Remove(_ context.Context, in cartsvc.ModifyInput) (*domain.Cart, error) {
	s.lastRemove = in
	return s.cart, s.removeErr
}

type stubOrderService struct {
	order      *domain.UserOrder
	orders     []domain.UserOrder
	submitErr  error
	historyErr error
}

func (s *stubOrderService) Submit(_ context.Context, _ string) (*domain.UserOrder, error) {
	return s.order, s.submitErr
}

func (s *stubOrderService) History(_ context.Context, _ string) ([]domain.UserOrder, error) {
	return s.orders, s.historyErr
}

func testDeps() Deps {
	return Deps{
		UserSvc:  &stubUserService{},
		ItemSvc:  &stubItemService{},
		CartSvc:  &stubCartService{},
		OrderSvc: &stubOrderService{},
	}
}
