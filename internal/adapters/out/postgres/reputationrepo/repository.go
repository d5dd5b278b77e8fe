package reputationrepo

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/reputation"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormReputationRepository implements ReputationRepository using GORM.
type GormReputationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReputationRepository creates a new GORM reputation repository.
func NewGormReputationRepository(db *gorm.DB, tracker aggregateTracker) *GormReputationRepository {
	return &GormReputationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new reputation to the database. A second initialization for
// the same customer is rejected with errs.ErrObjectAlreadyExists.
func (r *GormReputationRepository) Add(ctx context.Context, aggregate *reputation.Reputation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("reputation", aggregate.CustomerID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.CustomerID(), aggregate)
	return nil
}

// Update saves existing reputation counters to the database.
func (r *GormReputationRepository) Update(ctx context.Context, aggregate *reputation.Reputation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ReputationDTO{}).
		Where("customer_id = ?", dto.CustomerID).
		Updates(map[string]any{"delivered": dto.Delivered, "cancelled": dto.Cancelled})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("reputation", aggregate.CustomerID().String())
	}

	r.tracker.TrackAggregate(aggregate.CustomerID(), aggregate)
	return nil
}

// Get retrieves a customer's reputation. When called inside a transaction
// the row is locked with SELECT ... FOR UPDATE, so concurrent terminal
// transitions for the same customer serialize at the database.
func (r *GormReputationRepository) Get(ctx context.Context, customerID kernel.UUID) (*reputation.Reputation, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto ReputationDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&dto, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reputation", customerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
