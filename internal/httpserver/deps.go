package httpserver

import (
	"context"

	"webstore/internal/domain"
	cartsvc "webstore/internal/service/cart"
	usersvc "webstore/internal/service/user"
)

// UserService is what the user handlers need from the user service.
type UserService interface {
	Create(ctx context.Context, in usersvc.CreateInput) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// ItemService is what the item handlers need from the item service.
type ItemService interface {
	List(ctx context.Context) ([]domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	GetByName(ctx context.Context, name string) ([]domain.Item, error)
}

// CartService is what the cart handlers need from the cart service.
type CartService interface {
	Add(ctx context.Context, in cartsvc.ModifyInput) (*domain.Cart, error)
	Remove(ctx context.Context, in cartsvc.ModifyInput) (*domain.Cart, error)
}

// OrderService is what the order handlers need from the order service.
type OrderService interface {
	Submit(ctx context.Context, username string) (*domain.UserOrder, error)
	History(ctx context.Context, username string) ([]domain.UserOrder, error)
}

// Deps bundles the services the router depends on.
type Deps struct {
	UserSvc  UserService
	ItemSvc  ItemService
	CartSvc  CartService
	OrderSvc OrderService
}
