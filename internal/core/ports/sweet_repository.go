package ports

import (
	"context"

	"github.com/sweetshop/inventory-api/internal/core/domain"
)

// SearchFilter carries all query parameters for searching the catalog.
// Zero-valued criteria impose no constraint; set criteria compose with AND.
type SearchFilter struct {
	Query    string   // case-insensitive substring match on name
	Category string   // exact match
	MinPrice *float64 // inclusive lower price bound
	MaxPrice *float64 // inclusive upper price bound
}

// UpdateFields holds the partial overwrite for an update. Nil fields are
// left untouched.
type UpdateFields struct {
	Name     *string
	Category *string
	Price    *float64
	Quantity *int64
}

// SweetRepository defines persistence operations for inventory items.
//
// DecrementQuantity and IncrementQuantity are the only quantity mutation
// primitives. DecrementQuantity must be a single conditional store operation
// (decrement by n only if quantity >= n) so that concurrent purchases against
// the same item can never drive the quantity negative.
type SweetRepository interface {
	Create(ctx context.Context, s *domain.Sweet) (*domain.Sweet, error)
	FindByID(ctx context.Context, id string) (*domain.Sweet, error)
	// List returns all items, newest-created first.
	List(ctx context.Context) ([]*domain.Sweet, error)
	Search(ctx context.Context, filter SearchFilter) ([]*domain.Sweet, error)
	Update(ctx context.Context, id string, fields UpdateFields) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error
	// DecrementQuantity fails with domain.ErrInsufficientStock when the item
	// exists but holds fewer than n units, and domain.ErrSweetNotFound when
	// the item does not exist.
	DecrementQuantity(ctx context.Context, id string, n int64) (*domain.Sweet, error)
	IncrementQuantity(ctx context.Context, id string, n int64) (*domain.Sweet, error)
}
