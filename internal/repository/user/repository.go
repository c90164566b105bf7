package user

import (
	"context"

	"webstore/internal/domain"
)

// Repository persists and fetches users. Create also provisions the user's
// empty cart, since a user and its cart exist together.
type Repository interface {
	Create(ctx context.Context, username, passwordHash string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
