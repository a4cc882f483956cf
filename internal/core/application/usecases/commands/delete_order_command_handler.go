package commands

import (
	"context"
	"time"

	"github.com/ericks0nmartinez/burger/internal/core/ports"
	"github.com/ericks0nmartinez/burger/internal/pkg/keymutex"
)

// DeleteOrderCommandHandler handles order removal.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	orderLocks *keymutex.KeyedMutex
	now        func() time.Time
}

// NewDeleteOrderCommandHandler creates a handler for order removal.
func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	orderLocks *keymutex.KeyedMutex,
	now func() time.Time,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		orderLocks: orderLocks,
		now:        now,
	}
}

// Handle removes the order. Removing an unknown id surfaces the repository's
// not-found error.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if err := uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderEvent(ctx, h.publisher,
		ports.NewOrderEvent(ports.OrderEventDeleted, cmd.OrderID(), "", h.now()))

	return nil
}
