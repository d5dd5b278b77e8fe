package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate. The order must be valid and its
	// identifier must not already exist; reuse of an identifier is an error.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the current status and timestamp of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier. Within a
	// transaction the row is locked for update, serializing concurrent
	// transitions on the same order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// HistoryRepository defines the persistence contract for transition
// histories. Histories are append-only: records are inserted, never
// updated or deleted.
type HistoryRepository interface {
	// Add persists all records of a newly created history (record 0).
	Add(ctx context.Context, aggregate *order.History) error

	// Append persists the most recent record of the history.
	Append(ctx context.Context, aggregate *order.History) error

	// Get retrieves the complete transition history for an order, in
	// sequence order.
	Get(ctx context.Context, orderID kernel.UUID) (*order.History, error)
}
