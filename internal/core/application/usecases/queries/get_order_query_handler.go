package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ericks0nmartinez/burger/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order by id.
type GetOrderQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB, now func() time.Time) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, now: now}
}

// Handle executes the lookup. Returns errs.ObjectNotFoundError when no order
// carries the id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+selectOrderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil && !errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	row, err := scanOrderRow(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	return row.toResponse(h.now())
}
