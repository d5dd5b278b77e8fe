package order

import (
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrInvalidStatus is returned when a requested status change is not
	// allowed by the state machine, or when an order and its transition
	// history do not reference the same order. Both failure modes share
	// one error kind.
	ErrInvalidStatus = errors.New("status is invalid")

	// ErrUnauthorized is returned when the caller is neither the order's
	// owning customer nor exercising the restaurant-cancel exception.
	ErrUnauthorized = errors.New("caller is not authorized")
)

// Order represents a delivery order in the system. It is the aggregate root
// holding the single authoritative current status for one order.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a valid owning customer identity, immutable for the
//     order's lifetime
//   - Status changes follow the transition table defined on Status
//   - Only the owning customer may change the status, except that any
//     caller may set CancelledByRestaurant
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID is the owning customer's identity
	customerID kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// updatedAt is the timestamp in milliseconds of the last accepted transition
	updatedAt uint64

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order owned by customerID in the Placed status,
// stamped with the supplied timestamp. This is the only way to create a
// valid new Order; all identities are validated.
func NewOrder(id kernel.UUID, customerID kernel.UUID, now uint64) (*Order, error) {
	order := &Order{
		status:        Placed,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state. Unlike NewOrder
// it accepts any valid status, since the persisted order may be anywhere in
// its lifecycle.
func RestoreOrder(id kernel.UUID, customerID kernel.UUID, status Status, updatedAt uint64) (*Order, error) {
	order := &Order{
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identity of the customer who owns the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// UpdatedAt returns the timestamp in milliseconds of the last accepted
// transition, including the implicit Placed transition at creation.
func (o *Order) UpdatedAt() uint64 {
	return o.updatedAt
}

// ValidateChange checks whether the caller may transition the order to the
// requested status, without performing the transition.
//
// Checks are applied in a fixed sequence, first failure wins:
//  1. The caller must be the owning customer, or the requested status must
//     be CancelledByRestaurant (restaurants may cancel unilaterally).
//     Violations return ErrUnauthorized.
//  2. The transition must be allowed by the status table. Violations
//     return ErrInvalidStatus; so does an invalid requested value.
func (o *Order) ValidateChange(caller kernel.UUID, requested Status) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	if !caller.IsEqual(o.customerID) && requested != CancelledByRestaurant {
		return fmt.Errorf("%w: caller %s does not own order %s", ErrUnauthorized, caller, o.id)
	}

	if requested.Validate() != nil || !o.status.CanTransitionTo(requested) {
		return fmt.Errorf("%w: cannot transition from %s to %s", ErrInvalidStatus, o.status, requested)
	}

	return nil
}

// ChangeStatus transitions the order to the requested status on behalf of
// the given caller, stamping the order with the supplied timestamp. It
// enforces the same checks as ValidateChange; on any error the order is
// left unchanged.
func (o *Order) ChangeStatus(caller kernel.UUID, requested Status, now uint64) error {
	if err := o.ValidateChange(caller, requested); err != nil {
		return err
	}

	o.status = requested
	o.updatedAt = now
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the owning customer's identity.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setStatus validates and sets the order's status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
