package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetReputationQueryHandler reads a customer's reputation counters from the
// database.
type GetReputationQueryHandler struct {
	db *gorm.DB
}

// NewGetReputationQueryHandler creates a handler for reputation lookups.
// Requires a GORM database connection for query execution.
func NewGetReputationQueryHandler(db *gorm.DB) GetReputationQueryHandler {
	return GetReputationQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound when the
// customer's reputation was never initialized.
func (h GetReputationQueryHandler) Handle(
	ctx context.Context,
	query GetReputationQuery,
) (GetReputationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetReputationQueryResponse{}, err
	}

	var delivered, cancelled uint64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			delivered,
			cancelled
		FROM reputations
		WHERE customer_id = ?
	`, query.CustomerID().Bytes()).Row()

	err := row.Scan(&delivered, &cancelled)
	if errors.Is(err, sql.ErrNoRows) {
		return GetReputationQueryResponse{}, errs.NewObjectNotFoundError("reputation", query.CustomerID().String())
	}
	if err != nil {
		return GetReputationQueryResponse{}, err
	}

	return GetReputationQueryResponse{
		CustomerID: query.CustomerID(),
		Delivered:  delivered,
		Cancelled:  cancelled,
	}, nil
}
