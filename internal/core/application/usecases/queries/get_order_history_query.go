package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

// GetOrderHistoryQuery retrieves the full transition ledger of an order,
// oldest record first.
//
// Example:
//
//	query, err := NewGetOrderHistoryQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid history lookup: %w", err)
//	}
//
//	handler := NewGetOrderHistoryQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get history: %w", err)
//	}
//
//	for _, rec := range resp.Records {
//	    fmt.Printf("#%d %s at %d\n", rec.Seq, rec.Status, rec.Timestamp)
//	}
type GetOrderHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for an order's transition ledger.
func NewGetOrderHistoryQuery(orderID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return GetOrderHistoryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderHistoryQueryIsNotConstructed if validation fails.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose ledger is requested.
func (q GetOrderHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderHistoryQueryResponse carries the ordered transition records of
// one order. Records are contiguous starting at sequence zero.
type GetOrderHistoryQueryResponse struct {
	OrderID kernel.UUID
	Records []order.TransitionRecord
}
