package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents a request to transition an existing
// order to a new status on behalf of an authenticated caller. The caller
// identity is trusted as supplied; authorization against the order's owner
// happens in the domain.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand(orderID, order.Delivered, callerID)
//	if err != nil {
//	    return fmt.Errorf("invalid status update: %w", err)
//	}
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, clock, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status update failed: %w", err)
//	}
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	requested order.Status
	callerID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to transition an order.
// Validates the order identifier, the requested status value, and the
// caller identity. Whether the transition itself is allowed is decided by
// the domain when the command is handled.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	requested order.Status,
	callerID kernel.UUID,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setRequested(requested),
		statusCommand.setCallerID(callerID),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Requested returns the status the caller wants the order to enter.
func (c UpdateOrderStatusCommand) Requested() order.Status {
	return c.requested
}

// CallerID returns the authenticated identity of the caller.
func (c UpdateOrderStatusCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setRequested(requested order.Status) error {
	if err := requested.Validate(); err != nil {
		return err
	}

	c.requested = requested
	return nil
}

func (c *UpdateOrderStatusCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}
