// Package order provides domain entities and business logic for tracking
// the lifecycle of a delivery order from placement to its terminal outcome.
//
// The package includes:
//   - Order: The aggregate root holding the single authoritative status per order
//   - Status: A state machine that enforces valid status transitions
//   - History: The append-only ledger of accepted transitions for one order
//   - Event: The immutable notification record produced per accepted transition
//
// Key business rules:
//   - Orders start in Placed and end in Delivered, CancelledByUser, or
//     CancelledByRestaurant; terminal statuses allow no further transitions
//   - Only the owning customer may change an order's status, except that
//     any caller may set CancelledByRestaurant
//   - The history ledger records every accepted transition at contiguous
//     0-based sequence indices and is never rewritten
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
