package handler

// Request types for the catalog endpoints. Price and Quantity are pointers
// on the create path so a missing field is distinguishable from an explicit
// zero; both are required, zero is valid.

type createSweetRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Category string   `json:"category" validate:"required"`
	Price    *float64 `json:"price"    validate:"required,gte=0"`
	Quantity *int64   `json:"quantity" validate:"required,gte=0"`
}

// updateSweetRequest is a partial overwrite: nil fields are left untouched.
// No range validation on purpose; see the service for the rationale.
type updateSweetRequest struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
	Quantity *int64   `json:"quantity"`
}

// quantityRequest carries the purchase/restock amount. No validate tags:
// the positivity check belongs to the service so that missing and
// non-positive quantities fail with the same message.
type quantityRequest struct {
	Quantity int64 `json:"quantity"`
}
