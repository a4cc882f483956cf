package services

import (
	"github.com/ericks0nmartinez/burger/internal/core/domain/model/order"
)

// Payment method names recognized by the cash register.
const (
	PaymentMethodCash       = "cash"
	PaymentMethodPix        = "pix"
	PaymentMethodDebitCard  = "debitCard"
	PaymentMethodCreditCard = "creditCard"
)

// CashRegisterTotals is the aggregation of paid orders over a period. Card
// buckets are net of the card fee; Overall is gross, summing every order
// total plus its delivery fee before fees are deducted, so it reports the
// amount customers actually handed over. Values carry full float64 precision;
// rounding to 2 decimals happens only at presentation.
type CashRegisterTotals struct {
	Cash         float64
	Pix          float64
	DebitCard    float64
	CreditCard   float64
	DeliveryFees float64
	Overall      float64
	OrderCount   int
}

// CashRegister is a domain service that aggregates orders into per-payment-
// method totals for the daily cash register report.
//
// Business rules:
//   - only orders with confirmed payment and a positive total contribute;
//   - cash and pix are counted gross;
//   - card methods are counted net of their fractional fee rate
//     (total * (1 - rate));
//   - delivery fees are summed separately and also counted into the gross
//     overall total;
//   - orders with an unrecognized payment method still count into the
//     overall total but land in no method bucket.
type CashRegister struct{}

// NewCashRegister creates a new CashRegister instance.
func NewCashRegister() CashRegister {
	return CashRegister{}
}

// Aggregate folds the given orders into cash register totals using the
// current card fee rates.
func (CashRegister) Aggregate(orders []*order.Order, debitCardFeeRate, creditCardFeeRate float64) CashRegisterTotals {
	var totals CashRegisterTotals

	for _, o := range orders {
		if o == nil || !o.Paid() {
			continue
		}

		details := o.Details()
		if details.Total <= 0 {
			continue
		}

		switch details.PaymentMethod {
		case PaymentMethodCash:
			totals.Cash += details.Total
		case PaymentMethodPix:
			totals.Pix += details.Total
		case PaymentMethodDebitCard:
			totals.DebitCard += details.Total * (1 - debitCardFeeRate)
		case PaymentMethodCreditCard:
			totals.CreditCard += details.Total * (1 - creditCardFeeRate)
		}

		totals.Overall += details.Total
		if details.DeliveryFee > 0 {
			totals.DeliveryFees += details.DeliveryFee
			totals.Overall += details.DeliveryFee
		}
		totals.OrderCount++
	}

	return totals
}
