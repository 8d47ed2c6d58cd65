package ports

import (
	"context"

	"github.com/sweetshop/inventory-api/internal/core/domain"
)

// AuthService implements registration and login. Both return a signed
// session token alongside the sanitized user view.
type AuthService interface {
	Register(ctx context.Context, email, password, name, role string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
