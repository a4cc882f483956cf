package commands

import (
	"context"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles catalog product creation.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the product and returns its assigned id.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	newProduct, err := product.NewProduct(cmd.Name(), cmd.Price(), cmd.Image())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newProduct.ID(), nil
}
