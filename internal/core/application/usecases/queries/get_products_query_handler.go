package queries

import (
	"context"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/product"

	"gorm.io/gorm"
)

// GetProductsQueryHandler retrieves the product catalog from the database.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog queries.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the query, sorted by name for a stable menu.
func (h GetProductsQueryHandler) Handle(ctx context.Context, query GetProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT id, name, price, image, availability
		FROM products
	`
	args := make([]any, 0, 1)
	if query.ActiveOnly() {
		sql += ` WHERE availability = ?`
		args = append(args, int(product.Active))
	}
	sql += ` ORDER BY name`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductResponse, 0)
	for rows.Next() {
		var resp ProductResponse
		var availability int

		if err = rows.Scan(&resp.ID, &resp.Name, &resp.Price, &resp.Image, &availability); err != nil {
			return nil, err
		}

		resp.Price = round2(resp.Price)
		resp.Status = product.Availability(availability).String()
		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
