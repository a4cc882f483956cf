package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/order"
	"github.com/ericks0nmartinez/burger/internal/core/domain/model/settings"
	"github.com/ericks0nmartinez/burger/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetCashRegisterReportQueryHandler computes the per-payment-method totals of
// paid orders in a date range. Aggregation is delegated to the CashRegister
// domain service; the handler fetches the orders and the current fee rates.
type GetCashRegisterReportQueryHandler struct {
	db       *gorm.DB
	register services.CashRegister
	now      func() time.Time
}

// NewGetCashRegisterReportQueryHandler creates a handler for cash register
// reports.
func NewGetCashRegisterReportQueryHandler(db *gorm.DB, now func() time.Time) GetCashRegisterReportQueryHandler {
	return GetCashRegisterReportQueryHandler{
		db:       db,
		register: services.NewCashRegister(),
		now:      now,
	}
}

// Handle executes the report. A query without an explicit range covers the
// current calendar day.
func (h GetCashRegisterReportQueryHandler) Handle(
	ctx context.Context,
	query GetCashRegisterReportQuery,
) (CashRegisterReportResponse, error) {
	if err := query.Validate(); err != nil {
		return CashRegisterReportResponse{}, err
	}

	from, to := query.Range()
	if from.IsZero() {
		from, to = dayBounds(h.now())
	}

	debitRate, creditRate, err := h.feeRates(ctx)
	if err != nil {
		return CashRegisterReportResponse{}, err
	}

	orders, err := h.paidOrders(ctx, from, to)
	if err != nil {
		return CashRegisterReportResponse{}, err
	}

	totals := h.register.Aggregate(orders, debitRate, creditRate)

	return CashRegisterReportResponse{
		Cash:         round2(totals.Cash),
		Pix:          round2(totals.Pix),
		DebitCard:    round2(totals.DebitCard),
		CreditCard:   round2(totals.CreditCard),
		DeliveryFees: round2(totals.DeliveryFees),
		OverallTotal: round2(totals.Overall),
		OrderCount:   totals.OrderCount,
		From:         from,
		To:           to,
	}, nil
}

// feeRates reads the card fee rates from the settings document, falling back
// to the installation defaults when none was saved yet.
func (h GetCashRegisterReportQueryHandler) feeRates(ctx context.Context) (debit, credit float64, err error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT debit_card_fee_rate, credit_card_fee_rate
		FROM settings
		LIMIT 1
	`).Row()

	if scanErr := row.Scan(&debit, &credit); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			defaults := settings.DefaultSettings()
			return defaults.DebitCardFeeRate(), defaults.CreditCardFeeRate(), nil
		}
		return 0, 0, scanErr
	}

	return debit, credit, nil
}

// paidOrders restores lightweight order aggregates for the aggregation: only
// the fields the cash register reads are carried.
func (h GetCashRegisterReportQueryHandler) paidOrders(ctx context.Context, from, to time.Time) ([]*order.Order, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, payment_method, total, delivery_fee, status, placed_at
		FROM orders
		WHERE payment = true
		  AND placed_at >= ?
		  AND placed_at < ?
	`, from, to).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)
	for rows.Next() {
		var (
			id            int64
			name          string
			paymentMethod string
			total         float64
			deliveryFee   float64
			status        int
			placedAt      time.Time
		)
		if err = rows.Scan(&id, &name, &paymentMethod, &total, &deliveryFee, &status, &placedAt); err != nil {
			return nil, err
		}

		aggregate, restoreErr := order.RestoreOrder(id, order.Details{
			CustomerName:  name,
			PaymentMethod: paymentMethod,
			Total:         total,
			DeliveryFee:   deliveryFee,
		}, order.State{
			Status:   order.Status(status),
			Timeline: order.NewTimeline(order.Status(status).String(), placedAt),
			Paid:     true,
			PlacedAt: placedAt,
		})
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, aggregate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
