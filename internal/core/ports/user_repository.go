package ports

import (
	"context"

	"github.com/sweetshop/inventory-api/internal/core/domain"
)

// UserRepository defines the interface for user credential persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail looks a user up by lowercased email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID is used by the auth middleware to refresh identity on every
	// request; a deleted user must surface as domain.ErrUserNotFound.
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
