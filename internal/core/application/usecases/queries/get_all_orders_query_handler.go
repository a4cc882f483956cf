package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves all orders from the database, newest
// first, with per-status dwell times computed at read time.
type GetAllOrdersQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGetAllOrdersQueryHandler creates a handler for the all-orders query.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB, now func() time.Time) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db, now: now}
}

// Handle executes the query. Results are sorted newest first so the admin
// board shows recent orders on top.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+selectOrderColumns+`
		FROM orders
		ORDER BY id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := h.now()
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
