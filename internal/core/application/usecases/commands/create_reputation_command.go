package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrCreateReputationCommandIsNotConstructed = errors.New(
		"CreateReputationCommand must be created via NewCreateReputationCommand constructor",
	)
)

// CreateReputationCommand represents a request to initialize the reputation
// counters for a customer. A customer has at most one reputation; a second
// initialization for the same customer is rejected.
//
// Example:
//
//	cmd, err := NewCreateReputationCommand(customerID)
//	if err != nil {
//	    return fmt.Errorf("invalid reputation data: %w", err)
//	}
//
//	handler := NewCreateReputationCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to init reputation: %w", err)
//	}
type CreateReputationCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateReputationCommand creates a command to initialize a customer's
// reputation. Validates that the customer identifier is constructed.
func NewCreateReputationCommand(customerID kernel.UUID) (CreateReputationCommand, error) {
	reputationCommand := CreateReputationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := reputationCommand.setCustomerID(customerID); err != nil {
		return CreateReputationCommand{}, err
	}

	return reputationCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateReputationCommandIsNotConstructed if validation fails.
func (c CreateReputationCommand) Validate() error {
	return c.guard.Validate(ErrCreateReputationCommandIsNotConstructed)
}

// CustomerID returns the identity of the customer whose reputation is
// being initialized.
func (c CreateReputationCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *CreateReputationCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
