package historyrepo

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHistoryRepository implements HistoryRepository using GORM. The ledger
// is insert-only: Add writes the opening records of a new order, Append
// writes the latest record of an existing ledger. Existing rows are never
// touched.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Add persists every record of a freshly created ledger.
func (r *GormHistoryRepository) Add(ctx context.Context, history *order.History) error {
	if err := history.Validate(); err != nil {
		return err
	}

	dtos := make([]TransitionDTO, 0, history.Len())
	for _, rec := range history.Records() {
		dtos = append(dtos, fromRecord(history.OrderID(), rec))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("order history", history.OrderID().String(), err)
		}
		return err
	}

	return nil
}

// Append persists the newest record of the ledger. Callers append exactly
// one record per transition before calling Append; earlier records are
// already on disk.
func (r *GormHistoryRepository) Append(ctx context.Context, history *order.History) error {
	if err := history.Validate(); err != nil {
		return err
	}

	dto := fromRecord(history.OrderID(), history.Last())
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("order history", history.OrderID().String(), err)
		}
		return err
	}

	return nil
}

// Get loads the full ledger of an order, ordered by sequence number.
// Returns errs.ErrObjectNotFound when no ledger exists for the order.
func (r *GormHistoryRepository) Get(ctx context.Context, orderID kernel.UUID) (*order.History, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransitionDTO
	err := r.db.WithContext(ctx).
		Order("seq").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	if len(dtos) == 0 {
		return nil, errs.NewObjectNotFoundError("order history", orderID.String())
	}

	records := make([]order.TransitionRecord, 0, len(dtos))
	for _, dto := range dtos {
		records = append(records, toRecord(dto))
	}

	return order.RestoreHistory(orderID, records)
}
