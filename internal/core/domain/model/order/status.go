package order

import (
	"fmt"

	"github.com/ericks0nmartinez/burger/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The kitchen workflow moves orders through:
//
//	Awaiting ──> Preparing ──> Ready ──┬──> Delivered
//	                                   │
//	                                   └──> OutForDelivery ──> Delivered
//
// with Cancelled reachable from any non-final state. The enumeration is
// closed: unrecognized values are rejected before any mutation. Whether a
// particular from→to edge is legal is not decided here; that is the job of
// a TransitionPolicy, so the default behaviour stays permissive.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Awaiting is the initial status when an order is first placed.
	// Orders in this status are waiting for the kitchen to pick them up.
	Awaiting

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Ready indicates the order is done and waiting for pickup or dispatch.
	Ready

	// OutForDelivery indicates a delivery order has left with the courier.
	OutForDelivery

	// Delivered indicates the order reached the customer. Delivery is treated
	// as an instantaneous event, not a dwell state: entering Delivered closes
	// its own timeline interval immediately.
	Delivered

	// Cancelled indicates the order was abandoned before completion.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Awaiting:       "Awaiting",
		Preparing:      "Preparing",
		Ready:          "Ready",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Awaiting:       "Awaiting",
		Preparing:      "Preparing",
		Ready:          "Ready",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// Validate checks if the Status value is a member of the enumeration.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the status ends the order lifecycle.
// Delivered and Cancelled accept no further workflow transitions.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// ParseStatus converts a status name to its Status value.
//
// Returns an error wrapping errs.ErrValueIsInvalid when the name is not a
// recognized member of the enumeration; callers reject such input before
// touching the order.
func ParseStatus(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}
