package commands

import (
	"context"
	"time"

	"github.com/ericks0nmartinez/burger/internal/core/domain/services"
	"github.com/ericks0nmartinez/burger/internal/core/ports"
	"github.com/ericks0nmartinez/burger/internal/pkg/keymutex"
)

// TransitionOrderStatusCommandHandler handles order status transitions.
//
// Two concurrent transitions on the same order id are serialized through a
// keyed mutex, so their read-modify-write cycles cannot interleave within the
// process. Across processes persistence stays last-write-wins.
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.TransitionPolicy
	publisher  ports.EventPublisher
	orderLocks *keymutex.KeyedMutex
	now        func() time.Time
}

// NewTransitionOrderStatusCommandHandler creates a handler for status
// transitions. The policy decides which transitions are legal; pass the
// permissive policy to allow free movement.
func NewTransitionOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.TransitionPolicy,
	publisher ports.EventPublisher,
	orderLocks *keymutex.KeyedMutex,
	now func() time.Time,
) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		publisher:  publisher,
		orderLocks: orderLocks,
		now:        now,
	}
}

// Handle loads the order, checks the transition against the policy, applies
// it and persists the result. The status-changed event is published only
// after commit.
func (h *TransitionOrderStatusCommandHandler) Handle(ctx context.Context, cmd TransitionOrderStatusCommand) error {
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

	if err = h.policy.Allow(aggregate.Status(), cmd.NewStatus()); err != nil {
		return err
	}

	now := h.now()
	if err = aggregate.TransitionStatus(cmd.NewStatus(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderEvent(ctx, h.publisher,
		ports.NewOrderEvent(ports.OrderEventStatusChanged, aggregate.ID(), aggregate.Status().String(), now))

	return nil
}
