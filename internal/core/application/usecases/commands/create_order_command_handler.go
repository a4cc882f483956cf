package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/order"
	"github.com/ericks0nmartinez/burger/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start in Awaiting with a single open timeline interval.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and an
// EventPublisher for the best-effort creation notification.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	now func() time.Time,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        now,
	}
}

// Handle processes the order creation command and returns the assigned order id.
// Uses a transaction to ensure the order is properly persisted or rolled back
// on error; the creation event is published only after commit.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := h.now()
	newOrder, err := order.NewOrder(cmd.Details(), now)
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

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	publishOrderEvent(ctx, h.publisher,
		ports.NewOrderEvent(ports.OrderEventCreated, newOrder.ID(), newOrder.Status().String(), now))

	return newOrder.ID(), nil
}

// publishOrderEvent sends an order event best-effort: failures are logged and
// never propagated, the business operation already committed.
func publishOrderEvent(ctx context.Context, publisher ports.EventPublisher, event ports.OrderEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish order event",
			"type", event.Type,
			"orderId", event.OrderID,
			"error", err)
	}
}
