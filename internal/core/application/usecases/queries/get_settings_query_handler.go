package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/settings"

	"gorm.io/gorm"
)

// GetSettingsQueryHandler retrieves the system settings document.
type GetSettingsQueryHandler struct {
	db *gorm.DB
}

// NewGetSettingsQueryHandler creates a handler for settings lookups.
func NewGetSettingsQueryHandler(db *gorm.DB) GetSettingsQueryHandler {
	return GetSettingsQueryHandler{db: db}
}

// Handle executes the lookup, returning the installation defaults when no
// settings document was saved yet.
func (h GetSettingsQueryHandler) Handle(ctx context.Context, query GetSettingsQuery) (SettingsResponse, error) {
	if err := query.Validate(); err != nil {
		return SettingsResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			payment_methods,
			debit_card_fee_rate,
			credit_card_fee_rate,
			delivery_fee,
			per_km_rate,
			table_count,
			street_prefixes,
			latitude,
			longitude
		FROM settings
		LIMIT 1
	`).Row()

	var (
		resp           SettingsResponse
		paymentMethods []byte
		streetPrefixes []byte
	)
	err := row.Scan(
		&paymentMethods,
		&resp.DebitCardFeeRate,
		&resp.CreditCardFeeRate,
		&resp.DeliveryFee,
		&resp.PerKmRate,
		&resp.TableCount,
		&streetPrefixes,
		&resp.Latitude,
		&resp.Longitude,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return defaultSettingsResponse(), nil
		}
		return SettingsResponse{}, err
	}

	if err = json.Unmarshal(paymentMethods, &resp.PaymentMethods); err != nil {
		return SettingsResponse{}, err
	}
	if len(streetPrefixes) > 0 {
		if err = json.Unmarshal(streetPrefixes, &resp.StreetPrefixes); err != nil {
			return SettingsResponse{}, err
		}
	}

	return resp, nil
}

func defaultSettingsResponse() SettingsResponse {
	defaults := settings.DefaultSettings()
	return SettingsResponse{
		PaymentMethods:    defaults.PaymentMethods(),
		DebitCardFeeRate:  defaults.DebitCardFeeRate(),
		CreditCardFeeRate: defaults.CreditCardFeeRate(),
		DeliveryFee:       defaults.DeliveryFee(),
		PerKmRate:         defaults.PerKmRate(),
		TableCount:        defaults.TableCount(),
		StreetPrefixes:    defaults.StreetPrefixes(),
		Latitude:          defaults.Origin().Latitude(),
		Longitude:         defaults.Origin().Longitude(),
	}
}
