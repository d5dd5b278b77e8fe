package reputation

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

var (
	// ErrReputationIsNotConstructed is returned when a Reputation instance
	// was not created through NewReputation or RestoreReputation.
	ErrReputationIsNotConstructed = errors.New("Reputation must be created via NewReputation constructor")
)

// Reputation aggregates delivery outcomes for one customer. Counters only
// ever increment: a delivered order bumps the delivered count, a cancelled
// order (by either party) bumps the cancelled count. There is exactly one
// Reputation per customer, created explicitly before the customer's orders
// reach a terminal status.
type Reputation struct {
	// customerID is the owning customer's identity
	customerID kernel.UUID

	// delivered counts Delivered outcomes across the customer's orders
	delivered uint64

	// cancelled counts cancellation outcomes across the customer's orders
	cancelled uint64

	// isConstructed ensures the reputation was created via a constructor
	isConstructed bool
}

// NewReputation creates a Reputation for the customer with both counters at
// zero.
func NewReputation(customerID kernel.UUID) (*Reputation, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return &Reputation{
		customerID:    customerID,
		isConstructed: true,
	}, nil
}

// RestoreReputation reconstructs a Reputation from persisted counters.
func RestoreReputation(customerID kernel.UUID, delivered, cancelled uint64) (*Reputation, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return &Reputation{
		customerID:    customerID,
		delivered:     delivered,
		cancelled:     cancelled,
		isConstructed: true,
	}, nil
}

// Validate ensures the Reputation instance was properly constructed.
func (r *Reputation) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReputationIsNotConstructed
	}

	return nil
}

// CustomerID returns the identity of the customer this reputation belongs to.
func (r *Reputation) CustomerID() kernel.UUID {
	return r.customerID
}

// Delivered returns the number of delivered outcomes recorded.
func (r *Reputation) Delivered() uint64 {
	return r.delivered
}

// Cancelled returns the number of cancellation outcomes recorded.
func (r *Reputation) Cancelled() uint64 {
	return r.cancelled
}

// RecordOutcome updates the counters for an accepted transition.
// Delivered increments the delivered count, the two cancellation statuses
// increment the cancelled count, and non-terminal statuses leave the
// counters untouched. Counters never decrement.
func (r *Reputation) RecordOutcome(status order.Status) {
	switch {
	case status == order.Delivered:
		r.delivered++
	case status.IsCancellation():
		r.cancelled++
	}
}
