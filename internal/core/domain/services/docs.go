// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the restaurant system. It
// implements business logic that doesn't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - TransitionPolicy: pluggable rules deciding which status edges are legal
//   - CashRegister: aggregation of paid orders into per-payment-method totals
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
