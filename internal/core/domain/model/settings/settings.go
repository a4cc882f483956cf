// Package settings provides the single-document system configuration of the
// restaurant: accepted payment methods, card fee rates, delivery pricing and
// the store's origin coordinates for delivery distance.
package settings

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ericks0nmartinez/burger/internal/pkg/errs"
	"github.com/ericks0nmartinez/burger/internal/pkg/guard"
)

// ErrSettingsAreNotConstructed is returned when a Settings instance was not
// created through the NewSettings, DefaultSettings or RestoreSettings factory
// methods.
var ErrSettingsAreNotConstructed = errors.New("Settings must be created via NewSettings constructor")

// ErrCoordinatesAreNotConstructed is returned when attempting to use an
// improperly initialized Coordinates value.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates constructor")

// Coordinate bounds in decimal degrees.
const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// Coordinates is the store's position in decimal degrees. It is an immutable
// value object; the zero value is invalid and fails validation.
type Coordinates struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewCoordinates creates Coordinates with validated latitude and longitude.
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	coords := Coordinates{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		coords.setLatitude(latitude),
		coords.setLongitude(longitude),
	); err != nil {
		return Coordinates{}, err
	}

	return coords, nil
}

// Validate checks if the Coordinates were properly constructed.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (c Coordinates) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in decimal degrees.
func (c Coordinates) Longitude() float64 {
	return c.longitude
}

func (c *Coordinates) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	c.latitude = latitude
	return nil
}

func (c *Coordinates) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}
	c.longitude = longitude
	return nil
}

// Settings is the system configuration aggregate. A single document exists per
// installation; its card fee rates feed the cash register aggregation and its
// delivery pricing feeds order totals.
type Settings struct {
	paymentMethods    []string
	debitCardFeeRate  float64
	creditCardFeeRate float64
	deliveryFee       float64
	perKmRate         float64
	tableCount        int
	streetPrefixes    []string
	origin            Coordinates

	isConstructed bool
}

// NewSettings creates validated Settings.
func NewSettings(
	paymentMethods []string,
	debitCardFeeRate float64,
	creditCardFeeRate float64,
	deliveryFee float64,
	perKmRate float64,
	tableCount int,
	streetPrefixes []string,
	origin Coordinates,
) (*Settings, error) {
	s := &Settings{
		streetPrefixes: slices.Clone(streetPrefixes),
		isConstructed:  true,
	}

	if err := errors.Join(
		s.setPaymentMethods(paymentMethods),
		s.setFeeRate("debitCardFeeRate", &s.debitCardFeeRate, debitCardFeeRate),
		s.setFeeRate("creditCardFeeRate", &s.creditCardFeeRate, creditCardFeeRate),
		s.setAmount("deliveryFee", &s.deliveryFee, deliveryFee),
		s.setAmount("perKmRate", &s.perKmRate, perKmRate),
		s.setTableCount(tableCount),
		s.setOrigin(origin),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// DefaultSettings returns the configuration a fresh installation starts with.
func DefaultSettings() *Settings {
	origin, _ := NewCoordinates(0, 0)
	s, _ := NewSettings(
		[]string{"cash", "pix", "debitCard", "creditCard"},
		0.02,
		0.05,
		8.00,
		2.00,
		10,
		[]string{"Rua", "Avenida", "Travessa", "Alameda"},
		origin,
	)
	return s
}

// RestoreSettings reconstructs Settings from persistence.
func RestoreSettings(
	paymentMethods []string,
	debitCardFeeRate float64,
	creditCardFeeRate float64,
	deliveryFee float64,
	perKmRate float64,
	tableCount int,
	streetPrefixes []string,
	origin Coordinates,
) (*Settings, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}

	return &Settings{
		paymentMethods:    slices.Clone(paymentMethods),
		debitCardFeeRate:  debitCardFeeRate,
		creditCardFeeRate: creditCardFeeRate,
		deliveryFee:       deliveryFee,
		perKmRate:         perKmRate,
		tableCount:        tableCount,
		streetPrefixes:    slices.Clone(streetPrefixes),
		origin:            origin,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Settings were created through a factory method.
func (s *Settings) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSettingsAreNotConstructed
	}
	return nil
}

// PaymentMethods returns the accepted payment method names.
func (s *Settings) PaymentMethods() []string {
	return slices.Clone(s.paymentMethods)
}

// AcceptsPaymentMethod reports whether method is one of the accepted names.
func (s *Settings) AcceptsPaymentMethod(method string) bool {
	return slices.Contains(s.paymentMethods, method)
}

// DebitCardFeeRate returns the debit card fee as a fraction (0.02 means 2%).
func (s *Settings) DebitCardFeeRate() float64 {
	return s.debitCardFeeRate
}

// CreditCardFeeRate returns the credit card fee as a fraction.
func (s *Settings) CreditCardFeeRate() float64 {
	return s.creditCardFeeRate
}

// DeliveryFee returns the flat delivery fee.
func (s *Settings) DeliveryFee() float64 {
	return s.deliveryFee
}

// PerKmRate returns the delivery surcharge per kilometre.
func (s *Settings) PerKmRate() float64 {
	return s.perKmRate
}

// TableCount returns the number of tables in the restaurant.
func (s *Settings) TableCount() int {
	return s.tableCount
}

// StreetPrefixes returns the recognized street name prefixes.
func (s *Settings) StreetPrefixes() []string {
	return slices.Clone(s.streetPrefixes)
}

// Origin returns the store's coordinates.
func (s *Settings) Origin() Coordinates {
	return s.origin
}

// Patch applies a partial update. Nil fields keep their current value; set
// fields are validated before anything changes, so a bad patch leaves the
// settings untouched.
func (s *Settings) Patch(p Patch) error {
	updated := *s
	updated.paymentMethods = slices.Clone(s.paymentMethods)
	updated.streetPrefixes = slices.Clone(s.streetPrefixes)

	var errsJoined []error
	if p.PaymentMethods != nil {
		errsJoined = append(errsJoined, updated.setPaymentMethods(*p.PaymentMethods))
	}
	if p.DebitCardFeeRate != nil {
		errsJoined = append(errsJoined, updated.setFeeRate("debitCardFeeRate", &updated.debitCardFeeRate, *p.DebitCardFeeRate))
	}
	if p.CreditCardFeeRate != nil {
		errsJoined = append(errsJoined, updated.setFeeRate("creditCardFeeRate", &updated.creditCardFeeRate, *p.CreditCardFeeRate))
	}
	if p.DeliveryFee != nil {
		errsJoined = append(errsJoined, updated.setAmount("deliveryFee", &updated.deliveryFee, *p.DeliveryFee))
	}
	if p.PerKmRate != nil {
		errsJoined = append(errsJoined, updated.setAmount("perKmRate", &updated.perKmRate, *p.PerKmRate))
	}
	if p.TableCount != nil {
		errsJoined = append(errsJoined, updated.setTableCount(*p.TableCount))
	}
	if p.StreetPrefixes != nil {
		updated.streetPrefixes = slices.Clone(*p.StreetPrefixes)
	}
	if p.Origin != nil {
		errsJoined = append(errsJoined, updated.setOrigin(*p.Origin))
	}

	if err := errors.Join(errsJoined...); err != nil {
		return err
	}

	*s = updated
	return nil
}

// Patch describes a partial settings update. Nil fields are left unchanged.
type Patch struct {
	PaymentMethods    *[]string
	DebitCardFeeRate  *float64
	CreditCardFeeRate *float64
	DeliveryFee       *float64
	PerKmRate         *float64
	TableCount        *int
	StreetPrefixes    *[]string
	Origin            *Coordinates
}

func (s *Settings) setPaymentMethods(methods []string) error {
	if len(methods) == 0 {
		return errs.NewValueIsRequiredError("paymentMethods")
	}
	for _, method := range methods {
		if method == "" {
			return errs.NewValueIsRequiredError("paymentMethods")
		}
	}
	s.paymentMethods = slices.Clone(methods)
	return nil
}

func (s *Settings) setFeeRate(param string, target *float64, rate float64) error {
	if rate < 0 || rate >= 1 {
		return errs.NewValueIsOutOfRangeError(param, rate, 0.0, 1.0)
	}
	*target = rate
	return nil
}

func (s *Settings) setAmount(param string, target *float64, value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%v is negative", value))
	}
	*target = value
	return nil
}

func (s *Settings) setTableCount(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("tableCount", fmt.Errorf("%d is negative", count))
	}
	s.tableCount = count
	return nil
}

func (s *Settings) setOrigin(origin Coordinates) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	s.origin = origin
	return nil
}
