package ports

import (
	"context"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates as
// the command handlers use it. List-style reads bypass the aggregate and go
// through the query handlers' SQL directly.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its store identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Delete removes an order by its identifier.
	Delete(ctx context.Context, id int64) error
}
