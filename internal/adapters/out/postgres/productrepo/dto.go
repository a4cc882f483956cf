// Package productrepo persists catalog products.
package productrepo

import (
	"github.com/ericks0nmartinez/burger/internal/core/domain/model/product"
)

// ProductDTO is the database row for a catalog product.
type ProductDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"index"`
	Price        float64
	Image        string
	Availability int `gorm:"index"`
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product aggregate to its database row.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:           aggregate.ID(),
		Name:         aggregate.Name(),
		Price:        aggregate.Price(),
		Image:        aggregate.Image(),
		Availability: int(aggregate.Availability()),
	}
}

// toDomain converts a database row back to a product aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(
		dto.ID,
		dto.Name,
		dto.Price,
		dto.Image,
		product.Availability(dto.Availability),
	)
}
