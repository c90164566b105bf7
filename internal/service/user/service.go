package user

import (
	"context"
	"errors"
	"strings"

	"webstore/internal/domain"
	userrepo "webstore/internal/repository/user"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUsernameRequired is returned when the username is empty.
	ErrUsernameRequired = errors.New("username required")
	// ErrPasswordPolicy is returned when the password is too short or does
	// not match its confirmation.
	ErrPasswordPolicy = errors.New("password must be at least 7 characters and match the confirmation")
)

// Service handles account creation and lookup.
type Service struct {
	repo        userrepo.Repository
	passwordMin int
}

// New creates a Service with sane defaults.
func New(repo userrepo.Repository) *Service {
	return &Service{
		repo:        repo,
		passwordMin: 7,
	}
}

// CreateInput captures fields expected by the create-user endpoint.
type CreateInput struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Create registers a new user together with an empty cart. The stored and
// returned password is the bcrypt digest, never the plaintext.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if len(in.Password) < s.passwordMin || in.ConfirmPassword != in.Password {
		return nil, ErrPasswordPolicy
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, username, string(hashed))
}

// GetByUsername returns the user with the exact username.
func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// GetByID returns the user with the given id.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
