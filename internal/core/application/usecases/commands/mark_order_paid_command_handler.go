package commands

import (
	"context"
	"time"

	"github.com/ericks0nmartinez/burger/internal/core/ports"
	"github.com/ericks0nmartinez/burger/internal/pkg/keymutex"
)

// MarkOrderPaidCommandHandler handles payment confirmation. It shares the
// per-order lock with the transition handler so a confirmation and a
// transition on the same order cannot interleave within the process.
type MarkOrderPaidCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	orderLocks *keymutex.KeyedMutex
	now        func() time.Time
}

// NewMarkOrderPaidCommandHandler creates a handler for payment confirmations.
func NewMarkOrderPaidCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	orderLocks *keymutex.KeyedMutex,
	now func() time.Time,
) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		orderLocks: orderLocks,
		now:        now,
	}
}

// Handle loads the order, records the payment confirmation and persists the
// result. Confirming an already paid order overwrites the Received marker and
// the received time.
func (h *MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) error {
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

	now := h.now()
	aggregate.MarkPaid(now)

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderEvent(ctx, h.publisher,
		ports.NewOrderEvent(ports.OrderEventPaid, aggregate.ID(), aggregate.Status().String(), now))

	return nil
}
