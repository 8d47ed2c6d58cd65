package ports

import (
	"context"

	"github.com/sweetshop/inventory-api/internal/core/domain"
)

// CreateSweetInput carries all data needed to create a new catalog item.
// Price and Quantity are pointers so that an absent field can be told apart
// from an explicit zero: both are required at creation, but zero is valid.
type CreateSweetInput struct {
	Name     string
	Category string
	Price    *float64
	Quantity *int64
}

// SweetService defines the use-case operations over the catalog.
type SweetService interface {
	Create(ctx context.Context, input CreateSweetInput) (*domain.Sweet, error)
	List(ctx context.Context) ([]*domain.Sweet, error)
	Search(ctx context.Context, filter SearchFilter) ([]*domain.Sweet, error)
	Update(ctx context.Context, id string, fields UpdateFields) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error
	Purchase(ctx context.Context, id string, quantity int64) (*domain.Sweet, error)
	Restock(ctx context.Context, id string, quantity int64) (*domain.Sweet, error)
}
