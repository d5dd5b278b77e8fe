package commands

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/reputation"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles the business logic for status
// transitions. It loads the order (row-locked), its transition history, and,
// for terminal targets, the owner's reputation inside one transaction,
// applies the transition through the domain service, and persists all
// affected entities atomically. The event is published only after commit.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, clock, publisher)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, order.Assigned, callerID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status update failed: %w", err)
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
	transition services.TransitionService
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory UoWFactory,
	clock ports.Clock,
	publisher ports.EventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		publisher:  publisher,
		transition: services.NewTransitionService(),
	}
}

// Handle processes the status update command. All-or-nothing: the order
// row, the appended history record, and the reputation counters commit
// together or the transaction rolls back with no partial mutation. A
// missing reputation for a terminal target aborts the operation before
// any write.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock.Now()
	txID := kernel.NewUUID()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existingOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	history, err := uow.HistoryRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// A missing reputation must not mask an authorization or transition
	// failure: the domain service reports those first, so a not-found
	// result here simply leaves rep nil for the service to rule on.
	var rep *reputation.Reputation
	if cmd.Requested().IsTerminal() {
		rep, err = uow.ReputationRepository().Get(ctx, existingOrder.CustomerID())
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
	}

	event, err := h.transition.Apply(existingOrder, history, rep, cmd.CallerID(), cmd.Requested(), now, txID)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, existingOrder); err != nil {
		return err
	}

	if err = uow.HistoryRepository().Append(ctx, history); err != nil {
		return err
	}

	if rep != nil {
		if err = uow.ReputationRepository().Update(ctx, rep); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, event)
	return nil
}
