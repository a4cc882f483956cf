package http

import (
	"net/http"

	"github.com/ericks0nmartinez/burger/internal/core/application/usecases/commands"
	"github.com/ericks0nmartinez/burger/internal/core/application/usecases/queries"
	"github.com/ericks0nmartinez/burger/internal/core/domain/model/settings"
	"github.com/ericks0nmartinez/burger/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// settingsRequest is the JSON body for settings updates. All fields are
// optional; omitted fields keep their current value.
type settingsRequest struct {
	PaymentMethods    *[]string `json:"paymentMethods"`
	DebitCardFeeRate  *float64  `json:"debitCardFeeRate"`
	CreditCardFeeRate *float64  `json:"creditCardFeeRate"`
	DeliveryFee       *float64  `json:"deliveryFee"`
	PerKmRate         *float64  `json:"perKmRate"`
	TableCount        *int      `json:"tableCount"`
	StreetPrefixes    *[]string `json:"streetPrefixes"`
	Latitude          *float64  `json:"latitude"`
	Longitude         *float64  `json:"longitude"`
}

func (r settingsRequest) toPatch() (settings.Patch, error) {
	patch := settings.Patch{
		PaymentMethods:    r.PaymentMethods,
		DebitCardFeeRate:  r.DebitCardFeeRate,
		CreditCardFeeRate: r.CreditCardFeeRate,
		DeliveryFee:       r.DeliveryFee,
		PerKmRate:         r.PerKmRate,
		TableCount:        r.TableCount,
		StreetPrefixes:    r.StreetPrefixes,
	}

	if r.Latitude != nil || r.Longitude != nil {
		if r.Latitude == nil || r.Longitude == nil {
			return settings.Patch{}, errs.NewValueIsRequiredError("latitude and longitude")
		}

		origin, err := settings.NewCoordinates(*r.Latitude, *r.Longitude)
		if err != nil {
			return settings.Patch{}, err
		}
		patch.Origin = &origin
	}

	return patch, nil
}

// GetSettings handles GET /api/config.
func (s *Server) GetSettings(ctx echo.Context) error {
	resp, err := s.handlers.GetSettings.Handle(ctx.Request().Context(), queries.NewGetSettingsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, resp)
}

// UpdateSettings handles POST and PATCH /api/config. Both verbs apply a
// partial update over the stored document.
func (s *Server) UpdateSettings(ctx echo.Context) error {
	var req settingsRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request body")
	}

	patch, err := req.toPatch()
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateSettingsCommand(patch)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateSettings.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "settings updated")
}
