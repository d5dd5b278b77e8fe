// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the order tracking system.
// It implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - TransitionService: applies a status transition atomically across the
//     order, its history ledger, and the owner's reputation
//
// Domain services coordinate between aggregates, implementing business logic
// that spans aggregate boundaries following Domain-Driven Design principles.
package services
