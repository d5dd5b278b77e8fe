package services

import (
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/reputation"
	"orderflow/internal/pkg/errs"
)

// TransitionService is a domain service that applies a single status
// transition across the three entities affected by it: the order, its
// transition history, and the owner's reputation.
//
// Key responsibilities:
//   - Validating that the order and its history belong together
//   - Delegating authorization and state-machine checks to the order
//   - Keeping the history ledger in lockstep with the order's status
//   - Recording terminal outcomes on the owner's reputation
//
// Business rules:
//   - Checks run in a fixed sequence; the first failure aborts with no
//     partial mutation
//   - The reputation must exist before a terminal transition is applied;
//     non-terminal transitions do not touch it
//   - Exactly one event is produced per accepted transition
type TransitionService struct{}

// NewTransitionService creates a new TransitionService instance.
func NewTransitionService() TransitionService {
	return TransitionService{}
}

// Apply transitions the order to the requested status on behalf of the
// caller, appends the transition to the history ledger, records terminal
// outcomes on the reputation, and returns the notification event.
//
// The reputation argument may be nil for non-terminal targets; for a
// terminal target a nil reputation fails fast with an object-not-found
// error. All checks run before any mutation, so an error always leaves the
// order, history, and reputation unchanged.
func (s TransitionService) Apply(
	o *order.Order,
	history *order.History,
	rep *reputation.Reputation,
	caller kernel.UUID,
	requested order.Status,
	now uint64,
	txID kernel.UUID,
) (order.Event, error) {
	if err := o.Validate(); err != nil {
		return order.Event{}, err
	}
	if err := history.Validate(); err != nil {
		return order.Event{}, err
	}
	if err := txID.Validate(); err != nil {
		return order.Event{}, err
	}

	if !history.OrderID().IsEqual(o.ID()) {
		return order.Event{}, fmt.Errorf("%w: history for order %s does not match order %s",
			order.ErrInvalidStatus, history.OrderID(), o.ID())
	}

	if err := o.ValidateChange(caller, requested); err != nil {
		return order.Event{}, err
	}

	if requested.IsTerminal() {
		if err := rep.Validate(); err != nil {
			return order.Event{}, errs.NewObjectNotFoundErrorWithCause(
				"reputation", o.CustomerID().String(), err)
		}
		if !rep.CustomerID().IsEqual(o.CustomerID()) {
			return order.Event{}, errs.NewObjectNotFoundError("reputation", o.CustomerID().String())
		}
	}

	if err := o.ChangeStatus(caller, requested, now); err != nil {
		return order.Event{}, err
	}

	if err := history.Append(o.Status(), now); err != nil {
		return order.Event{}, err
	}

	if requested.IsTerminal() {
		rep.RecordOutcome(o.Status())
	}

	return order.NewEvent(o, txID), nil
}
