package commands

import (
	"errors"
	"fmt"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/product"
	"github.com/ericks0nmartinez/burger/internal/pkg/errs"
	"github.com/ericks0nmartinez/burger/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a request to change a catalog product's
// name, price, image or availability.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID    int64
	name         string
	price        float64
	image        string
	availability product.Availability

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a catalog product.
func NewUpdateProductCommand(
	productID int64,
	name string,
	price float64,
	image string,
	availability product.Availability,
) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		image: image,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setAvailability(availability),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to update.
func (c UpdateProductCommand) ProductID() int64 {
	return c.productID
}

// Name returns the new product name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Price returns the new menu price.
func (c UpdateProductCommand) Price() float64 {
	return c.price
}

// Image returns the new image reference.
func (c UpdateProductCommand) Image() string {
	return c.image
}

// Availability returns the new availability.
func (c UpdateProductCommand) Availability() product.Availability {
	return c.availability
}

func (c *UpdateProductCommand) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId", fmt.Errorf("%d is not greater than 0", productID))
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateProductCommand) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not greater than 0", price))
	}

	c.price = price
	return nil
}

func (c *UpdateProductCommand) setAvailability(availability product.Availability) error {
	if err := availability.Validate(); err != nil {
		return err
	}

	c.availability = availability
	return nil
}
