// Package kernel provides core domain primitives shared across the order
// tracking domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//
// These primitives enforce domain invariants, are immutable, and are safe
// for concurrent use. Identities for orders, customers, and transactions
// are all expressed as kernel.UUID values.
package kernel
