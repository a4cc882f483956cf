package settings_test

import (
	"testing"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/settings"
	"github.com/ericks0nmartinez/burger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCoordinates(t *testing.T, lat, lon float64) settings.Coordinates {
	t.Helper()
	coords, err := settings.NewCoordinates(lat, lon)
	require.NoError(t, err)
	return coords
}

func TestNewCoordinates(t *testing.T) {
	t.Run("should create coordinates within bounds", func(t *testing.T) {
		coords, err := settings.NewCoordinates(-23.5505, -46.6333)

		require.NoError(t, err)
		require.NoError(t, coords.Validate())
		assert.Equal(t, -23.5505, coords.Latitude())
		assert.Equal(t, -46.6333, coords.Longitude())
	})

	t.Run("should accept boundary values", func(t *testing.T) {
		for _, tc := range [][2]float64{
			{settings.LatitudeMin, settings.LongitudeMin},
			{settings.LatitudeMax, settings.LongitudeMax},
			{0, 0},
		} {
			_, err := settings.NewCoordinates(tc[0], tc[1])
			require.NoError(t, err)
		}
	})

	t.Run("should reject out-of-range values", func(t *testing.T) {
		for _, tc := range [][2]float64{
			{-90.1, 0},
			{90.1, 0},
			{0, -180.1},
			{0, 180.1},
		} {
			_, err := settings.NewCoordinates(tc[0], tc[1])

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should fail validation on zero value", func(t *testing.T) {
		var coords settings.Coordinates

		require.Error(t, coords.Validate())
	})
}

func TestNewSettings(t *testing.T) {
	t.Run("should create validated settings", func(t *testing.T) {
		s, err := settings.NewSettings(
			[]string{"cash", "pix"},
			0.02, 0.05, 8.00, 2.00, 12,
			[]string{"Rua"},
			mustCoordinates(t, -23.5505, -46.6333),
		)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, []string{"cash", "pix"}, s.PaymentMethods())
		assert.Equal(t, 0.02, s.DebitCardFeeRate())
		assert.Equal(t, 0.05, s.CreditCardFeeRate())
		assert.Equal(t, 8.00, s.DeliveryFee())
		assert.Equal(t, 2.00, s.PerKmRate())
		assert.Equal(t, 12, s.TableCount())
	})

	t.Run("should reject empty payment methods", func(t *testing.T) {
		_, err := settings.NewSettings(nil, 0.02, 0.05, 8, 2, 12, nil, mustCoordinates(t, 0, 0))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject fee rates outside the unit interval", func(t *testing.T) {
		for _, rate := range []float64{-0.01, 1, 1.5} {
			_, err := settings.NewSettings([]string{"cash"}, rate, 0.05, 8, 2, 12, nil, mustCoordinates(t, 0, 0))

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should reject negative amounts and table count", func(t *testing.T) {
		_, err := settings.NewSettings([]string{"cash"}, 0.02, 0.05, -1, 2, 12, nil, mustCoordinates(t, 0, 0))
		require.Error(t, err)

		_, err = settings.NewSettings([]string{"cash"}, 0.02, 0.05, 8, 2, -1, nil, mustCoordinates(t, 0, 0))
		require.Error(t, err)
	})

	t.Run("should reject unconstructed origin", func(t *testing.T) {
		_, err := settings.NewSettings([]string{"cash"}, 0.02, 0.05, 8, 2, 12, nil, settings.Coordinates{})

		require.Error(t, err)
	})
}

func TestSettings_Validate(t *testing.T) {
	t.Run("should reject zero value settings", func(t *testing.T) {
		var s settings.Settings

		assert.ErrorIs(t, s.Validate(), settings.ErrSettingsAreNotConstructed)
	})

	t.Run("should accept default settings", func(t *testing.T) {
		s := settings.DefaultSettings()

		require.NoError(t, s.Validate())
		assert.NotEmpty(t, s.PaymentMethods())
	})
}

func TestSettings_AcceptsPaymentMethod(t *testing.T) {
	s := settings.DefaultSettings()

	assert.True(t, s.AcceptsPaymentMethod("cash"))
	assert.True(t, s.AcceptsPaymentMethod("creditCard"))
	assert.False(t, s.AcceptsPaymentMethod("cheque"))
}

func TestSettings_Patch(t *testing.T) {
	t.Run("should update only the set fields", func(t *testing.T) {
		s := settings.DefaultSettings()
		previousCredit := s.CreditCardFeeRate()

		newDebit := 0.015
		newTables := 20
		err := s.Patch(settings.Patch{
			DebitCardFeeRate: &newDebit,
			TableCount:       &newTables,
		})

		require.NoError(t, err)
		assert.Equal(t, 0.015, s.DebitCardFeeRate())
		assert.Equal(t, 20, s.TableCount())
		assert.Equal(t, previousCredit, s.CreditCardFeeRate())
	})

	t.Run("should leave settings untouched on invalid patch", func(t *testing.T) {
		s := settings.DefaultSettings()
		previousDebit := s.DebitCardFeeRate()

		badRate := 1.5
		goodTables := 20
		err := s.Patch(settings.Patch{
			DebitCardFeeRate: &badRate,
			TableCount:       &goodTables,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, previousDebit, s.DebitCardFeeRate())
		assert.Equal(t, settings.DefaultSettings().TableCount(), s.TableCount())
	})

	t.Run("should replace origin coordinates", func(t *testing.T) {
		s := settings.DefaultSettings()
		origin := mustCoordinates(t, -23.5505, -46.6333)

		require.NoError(t, s.Patch(settings.Patch{Origin: &origin}))

		assert.Equal(t, -23.5505, s.Origin().Latitude())
	})
}

func TestRestoreSettings(t *testing.T) {
	t.Run("should rehydrate persisted settings", func(t *testing.T) {
		s, err := settings.RestoreSettings(
			[]string{"cash"}, 0.02, 0.05, 8, 2, 12,
			[]string{"Rua"},
			mustCoordinates(t, -23.5505, -46.6333),
		)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
	})

	t.Run("should reject unconstructed origin", func(t *testing.T) {
		_, err := settings.RestoreSettings([]string{"cash"}, 0.02, 0.05, 8, 2, 12, nil, settings.Coordinates{})

		require.Error(t, err)
	})
}
