package queries

import (
	"context"
	"time"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDeliveryOrdersQueryHandler retrieves delivery orders that left with a
// courier today. "Today" is the calendar day of the handler's clock in its
// location.
type GetDeliveryOrdersQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGetDeliveryOrdersQueryHandler creates a handler for the delivery board
// query.
func NewGetDeliveryOrdersQueryHandler(db *gorm.DB, now func() time.Time) GetDeliveryOrdersQueryHandler {
	return GetDeliveryOrdersQueryHandler{db: db, now: now}
}

// Handle executes the query: orders flagged for delivery, currently
// OutForDelivery, placed today, oldest first so couriers work the queue in
// order.
func (h GetDeliveryOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := h.now()
	from, to := dayBounds(now)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+selectOrderColumns+`
		FROM orders
		WHERE status = ?
		  AND delivery = true
		  AND placed_at >= ?
		  AND placed_at < ?
		ORDER BY id
	`, int(order.OutForDelivery), from, to).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		row, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}

		resp, respErr := row.toResponse(now)
		if respErr != nil {
			return nil, respErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// dayBounds returns the [start, end) of the calendar day containing t, in
// t's location.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
