package commands

import (
	"context"

	"orderflow/internal/core/domain/model/reputation"
)

// CreateReputationCommandHandler handles the business logic for reputation
// initialization. Creates the reputation with both counters at zero;
// duplicate initialization for the same customer fails with an
// already-exists error. No event is produced: events carry order
// transitions, and no order is involved here.
type CreateReputationCommandHandler struct {
	uowFactory ReputationUoWFactory
}

// NewCreateReputationCommandHandler creates a handler for reputation
// initialization. Requires a ReputationUoWFactory for transactional
// persistence.
func NewCreateReputationCommandHandler(uowFactory ReputationUoWFactory) CreateReputationCommandHandler {
	return CreateReputationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reputation initialization command.
func (h *CreateReputationCommandHandler) Handle(ctx context.Context, cmd CreateReputationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rep, err := reputation.NewReputation(cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = uow.ReputationRepository().Add(ctx, rep); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
