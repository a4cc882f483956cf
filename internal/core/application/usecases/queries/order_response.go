// Package queries contains read-only operations that retrieve system state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly with raw SQL, bypassing the aggregate repositories, and
// shape results for the API.
package queries

import (
	"database/sql"
	"encoding/json"
	"math"
	"time"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/order"
)

// OrderResponse is the API shape of an order, including its status timeline
// and the computed dwell time per status.
type OrderResponse struct {
	ID                int64                    `json:"id"`
	Name              string                   `json:"name"`
	Phone             string                   `json:"phone,omitempty"`
	Items             []order.Item             `json:"items"`
	Address           string                   `json:"address,omitempty"`
	Delivery          bool                     `json:"delivery"`
	PickupTime        string                   `json:"pickupTime,omitempty"`
	TableNumber       int                      `json:"tableNumber,omitempty"`
	PaymentMethod     string                   `json:"paymentMethod,omitempty"`
	Notes             string                   `json:"notes,omitempty"`
	Total             float64                  `json:"total"`
	DeliveryFee       float64                  `json:"deliveryFee"`
	TotalWithDelivery float64                  `json:"totalWithDelivery"`
	Status            string                   `json:"status"`
	StatusHistory     order.Timeline           `json:"statusHistory"`
	Payment           bool                     `json:"payment"`
	ReceivedTime      *time.Time               `json:"receivedTime,omitempty"`
	Time              time.Time                `json:"time"`
	Durations         []StatusDurationResponse `json:"durations"`
}

// StatusDurationResponse reports how long an order dwelled in one status.
// RegisteredAt is set instead of minutes/seconds for a Delivered entry whose
// closing time was never recorded.
type StatusDurationResponse struct {
	Status       string     `json:"status"`
	Minutes      int        `json:"minutes"`
	Seconds      int        `json:"seconds"`
	RegisteredAt *time.Time `json:"registeredAt,omitempty"`
}

// round2 rounds to 2 decimals for presentation. Aggregation upstream keeps
// full float64 precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// orderRow is the scan target shared by the order query handlers. Column
// order must match selectOrderColumns.
type orderRow struct {
	id            int64
	name          string
	phone         string
	items         []byte
	address       string
	delivery      bool
	pickupTime    string
	tableNumber   int
	paymentMethod string
	notes         string
	total         float64
	deliveryFee   float64
	status        int
	timeline      []byte
	payment       bool
	receivedTime  sql.NullTime
	placedAt      time.Time
}

const selectOrderColumns = `
	id,
	name,
	phone,
	items,
	address,
	delivery,
	pickup_time,
	table_number,
	payment_method,
	notes,
	total,
	delivery_fee,
	status,
	timeline,
	payment,
	received_time,
	placed_at`

func scanOrderRow(rows *sql.Rows) (orderRow, error) {
	var row orderRow
	err := rows.Scan(
		&row.id,
		&row.name,
		&row.phone,
		&row.items,
		&row.address,
		&row.delivery,
		&row.pickupTime,
		&row.tableNumber,
		&row.paymentMethod,
		&row.notes,
		&row.total,
		&row.deliveryFee,
		&row.status,
		&row.timeline,
		&row.payment,
		&row.receivedTime,
		&row.placedAt,
	)
	return row, err
}

// toResponse shapes a scanned row for the API, computing per-status dwell
// times against now.
func (row orderRow) toResponse(now time.Time) (OrderResponse, error) {
	var items []order.Item
	if len(row.items) > 0 {
		if err := json.Unmarshal(row.items, &items); err != nil {
			return OrderResponse{}, err
		}
	}

	var timeline order.Timeline
	if len(row.timeline) > 0 {
		if err := json.Unmarshal(row.timeline, &timeline); err != nil {
			return OrderResponse{}, err
		}
	}

	status := order.Status(row.status)

	durations := timeline.Durations(status, now)
	durationResponses := make([]StatusDurationResponse, 0, len(durations))
	for _, d := range durations {
		durationResponses = append(durationResponses, StatusDurationResponse{
			Status:       d.Key,
			Minutes:      d.Minutes,
			Seconds:      d.Seconds,
			RegisteredAt: d.RecordedAt,
		})
	}

	resp := OrderResponse{
		ID:                row.id,
		Name:              row.name,
		Phone:             row.phone,
		Items:             items,
		Address:           row.address,
		Delivery:          row.delivery,
		PickupTime:        row.pickupTime,
		TableNumber:       row.tableNumber,
		PaymentMethod:     row.paymentMethod,
		Notes:             row.notes,
		Total:             round2(row.total),
		DeliveryFee:       round2(row.deliveryFee),
		TotalWithDelivery: round2(row.total + row.deliveryFee),
		Status:            status.String(),
		StatusHistory:     timeline,
		Payment:           row.payment,
		Time:              row.placedAt,
		Durations:         durationResponses,
	}
	if row.receivedTime.Valid {
		received := row.receivedTime.Time
		resp.ReceivedTime = &received
	}

	return resp, nil
}
