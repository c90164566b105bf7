package item

import (
	"context"

	"webstore/internal/domain"
	itemrepo "webstore/internal/repository/item"
)

// Service handles catalog lookups.
type Service struct {
	repo itemrepo.Repository
}

func New(repo itemrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns all items, possibly empty.
func (s *Service) List(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Item{}
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByName returns all items with the exact name. Unlike List, an empty
// result is reported as not found.
func (s *Service) GetByName(ctx context.Context, name string) ([]domain.Item, error) {
	items, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrNotFound
	}
	return items, nil
}
