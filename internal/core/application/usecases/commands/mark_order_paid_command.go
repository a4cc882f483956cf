package commands

import (
	"errors"
	"fmt"

	"github.com/ericks0nmartinez/burger/internal/pkg/errs"
	"github.com/ericks0nmartinez/burger/internal/pkg/guard"
)

var ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
	"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
)

// MarkOrderPaidCommand represents a request to confirm payment of an order.
// Payment confirmation records the parallel Received timeline marker without
// touching the current status interval.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewMarkOrderPaidCommand creates a command to confirm payment of an order.
func NewMarkOrderPaidCommand(orderID int64) (MarkOrderPaidCommand, error) {
	cmd := MarkOrderPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to confirm.
func (c MarkOrderPaidCommand) OrderID() int64 {
	return c.orderID
}

func (c *MarkOrderPaidCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}
