package commands

import (
	"context"
	"time"

	"github.com/ericks0nmartinez/burger/internal/core/ports"
	"github.com/ericks0nmartinez/burger/internal/pkg/keymutex"
)

// UpdateOrderCommandHandler handles generic order detail updates.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	orderLocks *keymutex.KeyedMutex
	now        func() time.Time
}

// NewUpdateOrderCommandHandler creates a handler for order detail updates.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	orderLocks *keymutex.KeyedMutex,
	now func() time.Time,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		orderLocks: orderLocks,
		now:        now,
	}
}

// Handle loads the order, replaces its descriptive fields and persists the
// result. The order's lifecycle state is untouched.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.orderLocks.Lock(cmd.OrderID())
	defer h.orderLocks.Unlock(cmd.OrderID())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ApplyDetails(cmd.Details()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderEvent(ctx, h.publisher,
		ports.NewOrderEvent(ports.OrderEventUpdated, aggregate.ID(), aggregate.Status().String(), h.now()))

	return nil
}
