// Package settingsrepo persists the single system settings document.
package settingsrepo

import (
	"encoding/json"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/settings"
)

// settingsRowID is the fixed identifier of the single settings row.
const settingsRowID int64 = 1

// SettingsDTO is the database row for the settings document.
type SettingsDTO struct {
	ID                int64  `gorm:"primaryKey"`
	PaymentMethods    []byte `gorm:"type:jsonb"`
	DebitCardFeeRate  float64
	CreditCardFeeRate float64
	DeliveryFee       float64
	PerKmRate         float64
	TableCount        int
	StreetPrefixes    []byte `gorm:"type:jsonb"`
	Latitude          float64
	Longitude         float64
}

// TableName overrides GORM's default naming to use "settings".
func (SettingsDTO) TableName() string {
	return "settings"
}

// fromDomain converts the settings aggregate to its database row.
func fromDomain(aggregate *settings.Settings) (SettingsDTO, error) {
	paymentMethods, err := json.Marshal(aggregate.PaymentMethods())
	if err != nil {
		return SettingsDTO{}, err
	}

	streetPrefixes, err := json.Marshal(aggregate.StreetPrefixes())
	if err != nil {
		return SettingsDTO{}, err
	}

	return SettingsDTO{
		ID:                settingsRowID,
		PaymentMethods:    paymentMethods,
		DebitCardFeeRate:  aggregate.DebitCardFeeRate(),
		CreditCardFeeRate: aggregate.CreditCardFeeRate(),
		DeliveryFee:       aggregate.DeliveryFee(),
		PerKmRate:         aggregate.PerKmRate(),
		TableCount:        aggregate.TableCount(),
		StreetPrefixes:    streetPrefixes,
		Latitude:          aggregate.Origin().Latitude(),
		Longitude:         aggregate.Origin().Longitude(),
	}, nil
}

// toDomain converts a database row back to the settings aggregate.
func toDomain(dto SettingsDTO) (*settings.Settings, error) {
	var paymentMethods []string
	if len(dto.PaymentMethods) > 0 {
		if err := json.Unmarshal(dto.PaymentMethods, &paymentMethods); err != nil {
			return nil, err
		}
	}

	var streetPrefixes []string
	if len(dto.StreetPrefixes) > 0 {
		if err := json.Unmarshal(dto.StreetPrefixes, &streetPrefixes); err != nil {
			return nil, err
		}
	}

	origin, err := settings.NewCoordinates(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return settings.RestoreSettings(
		paymentMethods,
		dto.DebitCardFeeRate,
		dto.CreditCardFeeRate,
		dto.DeliveryFee,
		dto.PerKmRate,
		dto.TableCount,
		streetPrefixes,
		origin,
	)
}
