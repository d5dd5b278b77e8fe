package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetReputationQueryIsNotConstructed = errors.New(
		"GetReputationQuery must be created via NewGetReputationQuery constructor",
	)
)

// GetReputationQuery retrieves a customer's reputation counters.
type GetReputationQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetReputationQuery creates a query for a customer's reputation.
func NewGetReputationQuery(customerID kernel.UUID) (GetReputationQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetReputationQuery{}, err
	}

	return GetReputationQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetReputationQueryIsNotConstructed if validation fails.
func (q GetReputationQuery) Validate() error {
	return q.guard.Validate(ErrGetReputationQueryIsNotConstructed)
}

// CustomerID returns the identity of the customer whose reputation is read.
func (q GetReputationQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetReputationQueryResponse represents a customer's reputation counters.
// Both counters only ever grow.
type GetReputationQueryResponse struct {
	CustomerID kernel.UUID
	Delivered  uint64
	Cancelled  uint64
}
