package queries

import (
	"errors"

	"github.com/ericks0nmartinez/burger/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves the product catalog. The customer menu filters
// to active products; the admin catalog shows everything.
type GetProductsQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query for the whole catalog.
func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

// NewActiveProductsQuery creates a query limited to active products.
func NewActiveProductsQuery() GetProductsQuery {
	return GetProductsQuery{activeOnly: true, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through a constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// ActiveOnly reports whether inactive products are filtered out.
func (q GetProductsQuery) ActiveOnly() bool {
	return q.activeOnly
}

// ProductResponse is the API shape of a catalog product.
type ProductResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Image  string  `json:"image,omitempty"`
	Status string  `json:"status"`
}
