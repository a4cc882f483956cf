package queries

import (
	"errors"
	"fmt"
	"time"

	"github.com/ericks0nmartinez/burger/internal/pkg/errs"
	"github.com/ericks0nmartinez/burger/internal/pkg/guard"
)

var ErrGetCashRegisterReportQueryIsNotConstructed = errors.New(
	"GetCashRegisterReportQuery must be created via NewGetCashRegisterReportQuery constructor",
)

// GetCashRegisterReportQuery retrieves per-payment-method totals for a date
// range. The zero range means "today": the handler substitutes the current
// calendar day.
type GetCashRegisterReportQuery struct { //nolint:recvcheck //using for validation
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetCashRegisterReportQuery creates a query for today's cash register
// report.
func NewGetCashRegisterReportQuery() GetCashRegisterReportQuery {
	return GetCashRegisterReportQuery{guard: guard.NewConstructorGuard()}
}

// NewGetCashRegisterReportQueryForRange creates a query covering [from, to).
func NewGetCashRegisterReportQueryForRange(from, to time.Time) (GetCashRegisterReportQuery, error) {
	query := GetCashRegisterReportQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRange(from, to); err != nil {
		return GetCashRegisterReportQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through a constructor.
func (q GetCashRegisterReportQuery) Validate() error {
	return q.guard.Validate(ErrGetCashRegisterReportQueryIsNotConstructed)
}

// Range returns the requested [from, to) range. Both are zero for the
// default today report.
func (q GetCashRegisterReportQuery) Range() (time.Time, time.Time) {
	return q.from, q.to
}

func (q *GetCashRegisterReportQuery) setRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return errs.NewValueIsRequiredError("from/to")
	}
	if !to.After(from) {
		return errs.NewValueIsInvalidErrorWithCause("to",
			fmt.Errorf("%s is not after %s", to.Format(time.RFC3339), from.Format(time.RFC3339)))
	}

	q.from = from
	q.to = to
	return nil
}

// CashRegisterReportResponse is the API shape of the cash register report.
// Card totals are net of the configured card fee; OverallTotal is gross.
type CashRegisterReportResponse struct {
	Cash         float64   `json:"cash"`
	Pix          float64   `json:"pix"`
	DebitCard    float64   `json:"debitCard"`
	CreditCard   float64   `json:"creditCard"`
	DeliveryFees float64   `json:"deliveryFees"`
	OverallTotal float64   `json:"overallTotal"`
	OrderCount   int       `json:"orderCount"`
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
}
