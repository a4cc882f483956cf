// Package order provides domain entities and business logic for order
// management in the restaurant system. It implements the Order aggregate root
// with lifecycle tracking and a per-status timeline.
//
// The package includes:
//   - Order: The aggregate root that owns identity, details and lifecycle
//   - Status: The closed enumeration of lifecycle states
//   - Timeline: The ordered status history, one time interval per status
//
// Key business rules:
//   - Every transition closes the previous status interval and opens the next
//   - Delivered is an instantaneous event whose interval closes immediately
//   - Payment confirmation adds a parallel Received marker without touching
//     the current status interval
//   - Re-entering a status overwrites its timeline entry (last write wins)
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
