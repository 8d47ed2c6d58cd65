package domain

import (
	"errors"
	"time"
)

var ErrSweetNotFound = errors.New("sweet not found")
var ErrMissingFields = errors.New("all fields are required")
var ErrInvalidQuantity = errors.New("quantity must be positive")
var ErrInsufficientStock = errors.New("insufficient stock")
var ErrForbidden = errors.New("access forbidden")

// Sweet is a single inventory item in the shop catalog.
// Quantity never goes negative; the repository enforces this with a
// conditional decrement so concurrent purchases cannot jointly oversell.
type Sweet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
