package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/ericks0nmartinez/burger/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly
	// validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an order
	// that already carries a store-assigned identifier.
	ErrOrderIDAlreadyAssigned = errors.New("order ID is already assigned")
)

// Item is a single line of an order: a catalog product name with the quantity
// requested and the unit price captured at ordering time.
type Item struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Subtotal returns quantity times unit price for the line.
func (i Item) Subtotal() float64 {
	return float64(i.Quantity) * i.Price
}

// Details carries the descriptive fields of an order: who placed it, what it
// contains, where it goes and how it will be paid. Details are validated as a
// unit and can be replaced wholesale through ApplyDetails; lifecycle state
// (status, timeline, payment confirmation) is never part of Details and can
// only move through TransitionStatus and MarkPaid.
type Details struct {
	CustomerName  string
	Phone         string
	Items         []Item
	Address       string
	Delivery      bool
	PickupTime    string
	TableNumber   int
	PaymentMethod string
	Notes         string
	Total         float64
	DeliveryFee   float64
}

// Order represents a restaurant order. It is the aggregate root that owns the
// order lifecycle: the current status, the timeline of every status the order
// passed through, and the payment confirmation.
//
// Order follows these invariants:
//   - Status is always a valid member of the enumeration
//   - The timeline has at most one open interval after any transition, plus the
//     always-open Received payment marker
//   - Closed intervals never end before they start
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the store-assigned identifier, zero until AssignID.
	id int64

	// details holds the descriptive fields (customer, items, destination).
	details Details

	// status is the current state in the order lifecycle.
	status Status

	// timeline records one interval per status the order passed through.
	timeline Timeline

	// paid is true once payment was confirmed.
	paid bool

	// receivedTime is the moment payment was confirmed, nil while unpaid.
	receivedTime *time.Time

	// placedAt is the moment the order was created.
	placedAt time.Time

	// isConstructed ensures the order was created via a factory method.
	isConstructed bool
}

// NewOrder creates a new Order with validated details. The order starts in
// Awaiting with a single open timeline interval for it, and carries no
// identifier until the store assigns one via AssignID.
func NewOrder(details Details, now time.Time) (*Order, error) {
	order := &Order{
		status:        Awaiting,
		timeline:      NewTimeline(Awaiting.String(), now),
		placedAt:      now,
		isConstructed: true,
	}

	if err := order.setDetails(details); err != nil {
		return nil, err
	}

	return order, nil
}

// State is the lifecycle snapshot of a persisted order, used together with
// Details to rehydrate the aggregate from storage.
type State struct {
	Status       Status
	Timeline     Timeline
	Paid         bool
	ReceivedTime *time.Time
	PlacedAt     time.Time
}

// RestoreOrder reconstructs an Order from persistence without re-running the
// construction rules. The repository is trusted to hand back data that was
// valid when written; only the status is re-checked so a corrupted row cannot
// smuggle an out-of-enumeration value into the domain.
func RestoreOrder(id int64, details Details, state State) (*Order, error) {
	if err := state.Status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		details:       details,
		status:        state.Status,
		timeline:      state.Timeline,
		paid:          state.Paid,
		receivedTime:  state.ReceivedTime,
		placedAt:      state.PlacedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// AssignID sets the store-assigned identifier. It can be called once, with a
// positive id, on an order that does not have one yet.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%d is not greater than 0", id))
	}

	o.id = id
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the store-assigned identifier, zero when not yet persisted.
func (o *Order) ID() int64 {
	return o.id
}

// Details returns the descriptive fields of the order.
func (o *Order) Details() Details {
	return o.details
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Timeline returns a copy of the order's status history.
func (o *Order) Timeline() Timeline {
	return o.timeline.Clone()
}

// Paid reports whether payment was confirmed.
func (o *Order) Paid() bool {
	return o.paid
}

// ReceivedTime returns the payment confirmation time, nil while unpaid.
func (o *Order) ReceivedTime() *time.Time {
	return o.receivedTime
}

// PlacedAt returns the moment the order was created.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// TotalWithDelivery returns the order total plus the delivery fee.
func (o *Order) TotalWithDelivery() float64 {
	return o.details.Total + o.details.DeliveryFee
}

// TransitionStatus moves the order to newStatus at the given time:
//
//  1. the open interval of the current status, when present, is closed at now;
//  2. an interval for newStatus is recorded, starting at now and already
//     closed at now when newStatus is Delivered (delivery is an instantaneous
//     event, not a dwell state);
//  3. the current status becomes newStatus.
//
// Unrecognized statuses are rejected before any mutation. Re-entering a status
// the order already passed through overwrites that timeline entry, discarding
// the previous interval. Whether the from→to edge is allowed is not decided
// here; callers consult a TransitionPolicy first.
func (o *Order) TransitionStatus(newStatus Status, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.timeline.CloseOpen(o.status.String(), now)

	interval := Interval{Start: now}
	if newStatus == Delivered {
		end := now
		interval.End = &end
	}
	o.timeline.Record(newStatus.String(), interval)

	o.status = newStatus
	return nil
}

// MarkPaid confirms payment at the given time. It records the open-ended
// Received marker in the timeline without touching the current status
// interval: payment runs parallel to the kitchen workflow. Confirming a
// second time overwrites the marker and the received time.
func (o *Order) MarkPaid(now time.Time) {
	o.timeline.Record(ReceivedKey, Interval{Start: now})
	o.paid = true
	o.receivedTime = &now
}

// ApplyDetails replaces the descriptive fields after validation. Lifecycle
// state is untouched: status and payment only move through TransitionStatus
// and MarkPaid.
func (o *Order) ApplyDetails(details Details) error {
	return o.setDetails(details)
}

// Durations reports the dwell time of every timeline entry against now.
func (o *Order) Durations(now time.Time) []StatusDuration {
	return o.timeline.Durations(o.status, now)
}

// setDetails validates and sets the descriptive fields.
// This is a private method used during construction and ApplyDetails.
func (o *Order) setDetails(details Details) error {
	if err := errors.Join(
		validateCustomerName(details.CustomerName),
		validateItems(details.Items),
		validateAmount("total", details.Total),
		validateAmount("deliveryFee", details.DeliveryFee),
	); err != nil {
		return err
	}

	if details.Total == 0 {
		details.Total = itemsSubtotal(details.Items)
	}

	o.details = details
	return nil
}

// itemsSubtotal sums item price times quantity, used when the client omits
// the order total.
func itemsSubtotal(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func validateCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	return nil
}

func validateItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if item.Name == "" {
			return errs.NewValueIsRequiredError("items.name")
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("items.quantity", fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
		if item.Price < 0 {
			return errs.NewValueIsInvalidErrorWithCause("items.price", fmt.Errorf("%v is negative", item.Price))
		}
	}
	return nil
}

func validateAmount(param string, value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%v is negative", value))
	}
	return nil
}
