package commands

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Creates the order in Placed status together with record 0 of its
// transition history, then publishes the Placed event after the commit.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock, publisher)
//	cmd, _ := NewCreateOrderCommand(orderID, customerID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence, a clock for
// timestamps, and a publisher for the resulting event.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	clock ports.Clock,
	publisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		publisher:  publisher,
	}
}

// Handle processes the order placement command. The order row and the seed
// history record commit in one transaction; identifier reuse fails the whole
// operation. The event is published only after a successful commit, carrying
// a fresh transaction reference.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), now)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	history, err := order.NewHistory(newOrder.ID(), newOrder.Status(), now)
	if err != nil {
		return err
	}

	if err = uow.HistoryRepository().Add(ctx, history); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, order.NewEvent(newOrder, txID))
	return nil
}
