package order

import (
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
)

var (
	// ErrHistoryIsNotConstructed is returned when a History instance was not
	// created through NewHistory or RestoreHistory.
	ErrHistoryIsNotConstructed = errors.New("History must be created via NewHistory constructor")
)

// TransitionRecord is one immutable entry in an order's transition history.
// Records are keyed by a 0-based, contiguous sequence index per order;
// index 0 always records the Placed transition from order creation.
type TransitionRecord struct {
	// Seq is the 0-based position of the record within the order's history.
	Seq int

	// Status is the status the order entered with this transition.
	Status Status

	// Timestamp is the transition time in milliseconds.
	Timestamp uint64
}

// History is the append-only ledger of accepted transitions for a single
// order. It is the durable source of truth: an order's current status is
// always the status of the last record, and sequence indices are contiguous
// starting at 0 with no gaps or reordering. Records are never modified or
// removed once appended.
type History struct {
	// orderID links the ledger to its order
	orderID kernel.UUID

	// records holds all transitions in append order
	records []TransitionRecord

	// isConstructed ensures the history was created via a constructor
	isConstructed bool
}

// NewHistory creates the transition ledger for a newly placed order,
// seeded with record 0 carrying the initial status and timestamp.
func NewHistory(orderID kernel.UUID, status Status, now uint64) (*History, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &History{
		orderID: orderID,
		records: []TransitionRecord{
			{Seq: 0, Status: status, Timestamp: now},
		},
		isConstructed: true,
	}, nil
}

// RestoreHistory reconstructs a History from persisted records. Records
// must be non-empty and carry contiguous sequence indices starting at 0.
func RestoreHistory(orderID kernel.UUID, records []TransitionRecord) (*History, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: history for order %s has no records", ErrInvalidStatus, orderID)
	}
	for i, record := range records {
		if record.Seq != i {
			return nil, fmt.Errorf("%w: history for order %s has gap at index %d", ErrInvalidStatus, orderID, i)
		}
		if err := record.Status.Validate(); err != nil {
			return nil, err
		}
	}

	restored := make([]TransitionRecord, len(records))
	copy(restored, records)

	return &History{
		orderID:       orderID,
		records:       restored,
		isConstructed: true,
	}, nil
}

// Validate ensures the History instance was properly constructed.
func (h *History) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHistoryIsNotConstructed
	}

	return nil
}

// OrderID returns the identifier of the order this ledger belongs to.
func (h *History) OrderID() kernel.UUID {
	return h.orderID
}

// Records returns a copy of all transition records in append order.
// The ledger itself cannot be modified through the returned slice.
func (h *History) Records() []TransitionRecord {
	records := make([]TransitionRecord, len(h.records))
	copy(records, h.records)
	return records
}

// Len returns the number of recorded transitions, including the implicit
// Placed record from order creation.
func (h *History) Len() int {
	return len(h.records)
}

// Last returns the most recent transition record.
func (h *History) Last() TransitionRecord {
	return h.records[len(h.records)-1]
}

// Append records an accepted transition at the next contiguous sequence
// index. The status must be valid; the ledger never rewrites or reorders
// existing records.
func (h *History) Append(status Status, now uint64) error {
	if err := status.Validate(); err != nil {
		return err
	}

	h.records = append(h.records, TransitionRecord{
		Seq:       len(h.records),
		Status:    status,
		Timestamp: now,
	})
	return nil
}
