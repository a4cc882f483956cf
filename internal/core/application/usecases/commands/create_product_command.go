package commands

import (
	"errors"
	"fmt"

	"github.com/ericks0nmartinez/burger/internal/pkg/errs"
	"github.com/ericks0nmartinez/burger/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name  string
	price float64
	image string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
func NewCreateProductCommand(name string, price float64, image string) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		image: image,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the menu price.
func (c CreateProductCommand) Price() float64 {
	return c.price
}

// Image returns the product image reference.
func (c CreateProductCommand) Image() string {
	return c.image
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not greater than 0", price))
	}

	c.price = price
	return nil
}
