package queries

import (
	"errors"

	"github.com/ericks0nmartinez/burger/internal/pkg/errs"
	"github.com/ericks0nmartinez/burger/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves a single catalog product by its identifier.
type GetProductQuery struct {
	productID int64

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query for one product.
func NewGetProductQuery(productID int64) (GetProductQuery, error) {
	if productID <= 0 {
		return GetProductQuery{}, errs.NewValueIsInvalidError("productId")
	}

	return GetProductQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ProductID returns the identifier of the requested product.
func (q GetProductQuery) ProductID() int64 {
	return q.productID
}
