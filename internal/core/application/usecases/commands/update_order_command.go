package commands

import (
	"errors"
	"fmt"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/order"
	"github.com/ericks0nmartinez/burger/internal/pkg/errs"
	"github.com/ericks0nmartinez/burger/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to replace the descriptive fields
// of an order. Lifecycle state (status, timeline, payment) is deliberately
// out of reach: it only moves through the transition and payment commands.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	details order.Details

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order's details.
func NewUpdateOrderCommand(orderID int64, details order.Details) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDetails(details),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// Details returns the replacement details.
func (c UpdateOrderCommand) Details() order.Details {
	return c.details
}

func (c *UpdateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setDetails(details order.Details) error {
	if err := errors.Join(
		requireString("name", details.CustomerName),
		requireItems(details.Items),
	); err != nil {
		return err
	}

	c.details = details
	return nil
}
