package queries

import (
	"context"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/product"
	"github.com/ericks0nmartinez/burger/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetProductQueryHandler retrieves a single product from the database.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single product lookups.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the lookup.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, price, image, availability
		FROM products
		WHERE id = ?
	`, query.ProductID()).Rows()
	if err != nil {
		return ProductResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ProductResponse{}, err
		}
		return ProductResponse{}, errs.NewObjectNotFoundError("productId", query.ProductID())
	}

	var resp ProductResponse
	var availability int
	if err = rows.Scan(&resp.ID, &resp.Name, &resp.Price, &resp.Image, &availability); err != nil {
		return ProductResponse{}, err
	}

	resp.Price = round2(resp.Price)
	resp.Status = product.Availability(availability).String()
	return resp, nil
}
