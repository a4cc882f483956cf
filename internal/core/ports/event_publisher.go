package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Order event types published on the order lifecycle topic.
const (
	OrderEventCreated       = "order.created"
	OrderEventStatusChanged = "order.status_changed"
	OrderEventPaid          = "order.paid"
	OrderEventUpdated       = "order.updated"
	OrderEventDeleted       = "order.deleted"

	// BoardRefreshEvent asks board consumers to re-fetch their view.
	BoardRefreshEvent = "board.refresh"
)

// OrderEvent is the envelope published when an order changes. Other views
// (the admin board, the delivery board) consume these to refresh without
// polling.
type OrderEvent struct {
	EventID    uuid.UUID `json:"eventId"`
	Type       string    `json:"type"`
	OrderID    int64     `json:"orderId"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewOrderEvent creates an event envelope with a fresh event id.
func NewOrderEvent(eventType string, orderID int64, status string, occurredAt time.Time) OrderEvent {
	return OrderEvent{
		EventID:    uuid.New(),
		Type:       eventType,
		OrderID:    orderID,
		Status:     status,
		OccurredAt: occurredAt,
	}
}

// EventPublisher pushes order events to interested consumers. Publishing is
// best-effort: command handlers fire after commit and only log failures, a
// lost notification never fails the business operation.
type EventPublisher interface {
	// Publish sends the event. Implementations must not block longer than
	// the context allows.
	Publish(ctx context.Context, event OrderEvent) error

	// Close releases the underlying connection.
	Close() error
}
