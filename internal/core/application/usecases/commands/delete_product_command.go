package commands

import (
	"errors"
	"fmt"

	"github.com/ericks0nmartinez/burger/internal/pkg/errs"
	"github.com/ericks0nmartinez/burger/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand represents a request to remove a catalog product.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID int64

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates a command to remove a catalog product.
func NewDeleteProductCommand(productID int64) (DeleteProductCommand, error) {
	cmd := DeleteProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProductID(productID); err != nil {
		return DeleteProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to remove.
func (c DeleteProductCommand) ProductID() int64 {
	return c.productID
}

func (c *DeleteProductCommand) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId", fmt.Errorf("%d is not greater than 0", productID))
	}

	c.productID = productID
	return nil
}
