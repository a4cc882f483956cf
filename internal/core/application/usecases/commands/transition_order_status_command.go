package commands

import (
	"errors"
	"fmt"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/order"
	"github.com/ericks0nmartinez/burger/internal/pkg/errs"
	"github.com/ericks0nmartinez/burger/internal/pkg/guard"
)

var ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
	"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand constructor",
)

// TransitionOrderStatusCommand represents a request to move an order to a new
// lifecycle status. The transition closes the current timeline interval and
// opens one for the target status.
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	newStatus order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderStatusCommand creates a command to transition an order.
// Validates that the order id is positive and the target status is a member
// of the enumeration, so an unrecognized status is rejected before any
// mutation is attempted.
func NewTransitionOrderStatusCommand(orderID int64, newStatus order.Status) (TransitionOrderStatusCommand, error) {
	cmd := TransitionOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// NewStatus returns the target status.
func (c TransitionOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

func (c *TransitionOrderStatusCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
