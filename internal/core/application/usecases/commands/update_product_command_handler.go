package commands

import (
	"context"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/product"
)

// UpdateProductCommandHandler handles catalog product updates.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the product, applies the changes and persists the result.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = aggregate.Rename(cmd.Name()); err != nil {
		return err
	}
	if err = aggregate.Reprice(cmd.Price()); err != nil {
		return err
	}
	aggregate.SetImage(cmd.Image())

	if cmd.Availability() == product.Active {
		aggregate.Activate()
	} else {
		aggregate.Deactivate()
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
