package order

import (
	"orderflow/internal/core/domain/model/kernel"
)

// Event is the immutable notification record produced once per accepted
// mutating operation. Events are ephemeral: the core hands each one to a
// publisher and guarantees production, not delivery. Consumers that need a
// complete picture must reconstruct state from the transition history, the
// durable source of truth.
type Event struct {
	// OrderID identifies the order the transition applies to.
	OrderID kernel.UUID

	// CustomerID identifies the order's owning customer.
	CustomerID kernel.UUID

	// Status is the status the order entered.
	Status Status

	// Timestamp is the transition time in milliseconds.
	Timestamp uint64

	// TxID is the causal transaction reference of the mutating call that
	// produced this event.
	TxID kernel.UUID
}

// NewEvent builds the notification record for an accepted transition.
func NewEvent(o *Order, txID kernel.UUID) Event {
	return Event{
		OrderID:    o.ID(),
		CustomerID: o.CustomerID(),
		Status:     o.Status(),
		Timestamp:  o.UpdatedAt(),
		TxID:       txID,
	}
}
