package queries

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads an order's transition ledger from the
// database, ordered by sequence number.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for history lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the ledger read. An order always has at least one record
// (written when it was placed), so an empty result means the order does not
// exist and maps to errs.ErrObjectNotFound.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) (GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			seq,
			status,
			occurred_at
		FROM order_transitions
		WHERE order_id = ?
		ORDER BY seq
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}
	defer rows.Close()

	records := make([]order.TransitionRecord, 0)
	for rows.Next() {
		var seq, status int
		var occurredAt uint64

		if err = rows.Scan(&seq, &status, &occurredAt); err != nil {
			return GetOrderHistoryQueryResponse{}, err
		}

		records = append(records, order.TransitionRecord{
			Seq:       seq,
			Status:    order.Status(status),
			Timestamp: occurredAt,
		})
	}

	if err = rows.Err(); err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	if len(records) == 0 {
		return GetOrderHistoryQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return GetOrderHistoryQueryResponse{
		OrderID: query.OrderID(),
		Records: records,
	}, nil
}
