// Package product provides the catalog side of the restaurant system: the
// burgers (and other items) customers can order, with their prices and
// availability.
package product

import (
	"errors"
	"fmt"

	"github.com/ericks0nmartinez/burger/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory methods.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Availability marks whether a catalog product can currently be ordered.
type Availability int

const (
	// AvailabilityUnknown represents an invalid or undefined availability.
	AvailabilityUnknown Availability = iota

	// Active products appear on the menu and can be ordered.
	Active

	// Inactive products are hidden from the menu but kept for history.
	Inactive
)

func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		AvailabilityUnknown: "Unknown",
		Active:              "Active",
		Inactive:            "Inactive",
	}
}

// Validate checks if the Availability value is a member of the enumeration.
func (a Availability) Validate() error {
	if a != Active && a != Inactive {
		return errs.NewValueIsInvalidErrorWithCause("availability", fmt.Errorf("%d is not a valid availability", a))
	}
	return nil
}

// String returns the human-readable name of the availability.
func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "Unknown"
}

// ParseAvailability converts an availability name to its value.
func ParseAvailability(name string) (Availability, error) {
	switch name {
	case "Active":
		return Active, nil
	case "Inactive":
		return Inactive, nil
	default:
		return AvailabilityUnknown, errs.NewValueIsInvalidErrorWithCause("availability", fmt.Errorf("%q is not a valid availability", name))
	}
}

// Product is a catalog entry. Prices captured on orders are snapshots, so
// changing a product's price never rewrites past orders.
type Product struct {
	id           int64
	name         string
	price        float64
	image        string
	availability Availability

	isConstructed bool
}

// NewProduct creates a validated Product. New products start Active and carry
// no identifier until the store assigns one via AssignID.
func NewProduct(name string, price float64, image string) (*Product, error) {
	product := &Product{
		availability:  Active,
		isConstructed: true,
	}

	if err := errors.Join(
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	product.image = image
	return product, nil
}

// RestoreProduct reconstructs a Product from persistence.
func RestoreProduct(id int64, name string, price float64, image string, availability Availability) (*Product, error) {
	if err := availability.Validate(); err != nil {
		return nil, err
	}

	return &Product{
		id:            id,
		name:          name,
		price:         price,
		image:         image,
		availability:  availability,
		isConstructed: true,
	}, nil
}

// Validate ensures the Product was created through a factory method.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// AssignID sets the store-assigned identifier, once, with a positive id.
func (p *Product) AssignID(id int64) error {
	if p.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId", fmt.Errorf("id %d is already assigned", p.id))
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId", fmt.Errorf("%d is not greater than 0", id))
	}
	p.id = id
	return nil
}

// ID returns the store-assigned identifier, zero when not yet persisted.
func (p *Product) ID() int64 {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current menu price.
func (p *Product) Price() float64 {
	return p.price
}

// Image returns the product image reference.
func (p *Product) Image() string {
	return p.image
}

// Availability returns whether the product can currently be ordered.
func (p *Product) Availability() Availability {
	return p.availability
}

// Rename changes the product name after validation.
func (p *Product) Rename(name string) error {
	return p.setName(name)
}

// Reprice changes the menu price after validation.
func (p *Product) Reprice(price float64) error {
	return p.setPrice(price)
}

// SetImage replaces the product image reference.
func (p *Product) SetImage(image string) {
	p.image = image
}

// Activate puts the product back on the menu.
func (p *Product) Activate() {
	p.availability = Active
}

// Deactivate hides the product from the menu without deleting it.
func (p *Product) Deactivate() {
	p.availability = Inactive
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not greater than 0", price))
	}
	p.price = price
	return nil
}
