// Package historyrepo persists the append-only transition ledger of orders.
// Every status an order has ever held is a row here; rows are never updated
// or deleted.
package historyrepo

import (
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// TransitionDTO represents one ledger row. The composite primary key
// (order_id, seq) enforces sequence uniqueness per order at the database
// level.
type TransitionDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"primaryKey;autoIncrement:false"`
	Status     int
	OccurredAt uint64 `gorm:"type:bigint"`
}

// TableName specifies the database table name for ledger rows.
func (TransitionDTO) TableName() string {
	return "order_transitions"
}

func fromRecord(orderID kernel.UUID, rec order.TransitionRecord) TransitionDTO {
	return TransitionDTO{
		OrderID:    orderID.Bytes(),
		Seq:        rec.Seq,
		Status:     int(rec.Status),
		OccurredAt: rec.Timestamp,
	}
}

func toRecord(dto TransitionDTO) order.TransitionRecord {
	return order.TransitionRecord{
		Seq:       dto.Seq,
		Status:    order.Status(dto.Status),
		Timestamp: dto.OccurredAt,
	}
}
