package queries

import (
	"errors"

	"github.com/ericks0nmartinez/burger/internal/pkg/guard"
)

var ErrGetDeliveryOrdersQueryIsNotConstructed = errors.New(
	"GetDeliveryOrdersQuery must be created via NewGetDeliveryOrdersQuery constructor",
)

// GetDeliveryOrdersQuery retrieves today's delivery orders currently out for
// delivery. Feeds the courier-facing delivery board.
type GetDeliveryOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveryOrdersQuery creates a query for the delivery board.
func NewGetDeliveryOrdersQuery() GetDeliveryOrdersQuery {
	return GetDeliveryOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryOrdersQueryIsNotConstructed)
}
