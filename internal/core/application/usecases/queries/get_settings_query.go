package queries

import (
	"errors"

	"github.com/ericks0nmartinez/burger/internal/pkg/guard"
)

var ErrGetSettingsQueryIsNotConstructed = errors.New(
	"GetSettingsQuery must be created via NewGetSettingsQuery constructor",
)

// GetSettingsQuery retrieves the system settings document.
type GetSettingsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSettingsQuery creates a query for the settings document.
func NewGetSettingsQuery() GetSettingsQuery {
	return GetSettingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetSettingsQueryIsNotConstructed)
}

// SettingsResponse is the API shape of the settings document.
type SettingsResponse struct {
	PaymentMethods    []string `json:"paymentMethods"`
	DebitCardFeeRate  float64  `json:"debitCardFeeRate"`
	CreditCardFeeRate float64  `json:"creditCardFeeRate"`
	DeliveryFee       float64  `json:"deliveryFee"`
	PerKmRate         float64  `json:"perKmRate"`
	TableCount        int      `json:"tableCount"`
	StreetPrefixes    []string `json:"streetPrefixes"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
}
