package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/reputation"
)

// ReputationRepository defines the persistence contract for reputation
// aggregates. There is at most one reputation per customer; creating a
// second one for the same customer is an error.
type ReputationRepository interface {
	// Add persists a new reputation with zeroed counters.
	Add(ctx context.Context, aggregate *reputation.Reputation) error

	// Update persists the current counters of an existing reputation.
	Update(ctx context.Context, aggregate *reputation.Reputation) error

	// Get retrieves the reputation for a customer. Within a transaction the
	// row is locked for update, serializing concurrent counter updates for
	// the same customer across independent orders.
	Get(ctx context.Context, customerID kernel.UUID) (*reputation.Reputation, error)
}
