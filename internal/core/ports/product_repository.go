package ports

import (
	"context"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product and assigns its store identifier.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its identifier.
	Get(ctx context.Context, id int64) (*product.Product, error)

	// Delete removes a product by its identifier.
	Delete(ctx context.Context, id int64) error
}
