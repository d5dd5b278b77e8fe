// Package reputationrepo provides data transfer objects and mapping functions
// for reputation persistence.
package reputationrepo

import (
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/reputation"

	"github.com/google/uuid"
)

// ReputationDTO represents the database structure for persisting reputation
// counters. The customer identifier is the primary key: one row per customer.
type ReputationDTO struct {
	CustomerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Delivered  uint64    `gorm:"type:bigint"`
	Cancelled  uint64    `gorm:"type:bigint"`
}

// TableName specifies the database table name for reputation entities.
func (ReputationDTO) TableName() string {
	return "reputations"
}

func fromDomain(rep *reputation.Reputation) ReputationDTO {
	return ReputationDTO{
		CustomerID: rep.CustomerID().Bytes(),
		Delivered:  rep.Delivered(),
		Cancelled:  rep.Cancelled(),
	}
}

func toDomain(dto ReputationDTO) (*reputation.Reputation, error) {
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return reputation.RestoreReputation(customerID, dto.Delivered, dto.Cancelled)
}
