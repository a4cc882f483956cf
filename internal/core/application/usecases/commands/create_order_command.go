package commands

import (
	"errors"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/order"
	"github.com/ericks0nmartinez/burger/internal/pkg/errs"
	"github.com/ericks0nmartinez/burger/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order. Encapsulates
// the descriptive order details; the lifecycle (initial Awaiting status and
// timeline) is set up by the aggregate itself.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(details)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher, time.Now)
//	id, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	details order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the customer name and at least one item are present; the
// remaining detail rules are enforced by the Order constructor.
func NewCreateOrderCommand(details order.Details) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderCommand.setDetails(details); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Details returns the descriptive order details.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c *CreateOrderCommand) setDetails(details order.Details) error {
	if err := errors.Join(
		requireString("name", details.CustomerName),
		requireItems(details.Items),
	); err != nil {
		return err
	}

	c.details = details
	return nil
}

func requireString(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

func requireItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	return nil
}
