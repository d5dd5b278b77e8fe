package order_test

import (
	"testing"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistory(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("should seed ledger with record 0", func(t *testing.T) {
		h, err := order.NewHistory(orderID, order.Placed, 1000)

		require.NoError(t, err)
		require.NoError(t, h.Validate())
		assert.True(t, h.OrderID().IsEqual(orderID))
		assert.Equal(t, 1, h.Len())
		assert.Equal(t, order.TransitionRecord{Seq: 0, Status: order.Placed, Timestamp: 1000}, h.Last())
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		h, err := order.NewHistory(invalidID, order.Placed, 1000)

		require.Error(t, err)
		assert.Nil(t, h)
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		h, err := order.NewHistory(orderID, order.Unknown, 1000)

		require.Error(t, err)
		assert.Nil(t, h)
	})
}

func TestHistory_Append(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("should append at contiguous indices", func(t *testing.T) {
		h, err := order.NewHistory(orderID, order.Placed, 1000)
		require.NoError(t, err)

		require.NoError(t, h.Append(order.Assigned, 2000))
		require.NoError(t, h.Append(order.Delivered, 3000))

		records := h.Records()
		require.Len(t, records, 3)
		for i, record := range records {
			assert.Equal(t, i, record.Seq)
		}
		assert.Equal(t, order.Placed, records[0].Status)
		assert.Equal(t, order.Assigned, records[1].Status)
		assert.Equal(t, order.Delivered, records[2].Status)
		assert.Equal(t, order.TransitionRecord{Seq: 2, Status: order.Delivered, Timestamp: 3000}, h.Last())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		h, err := order.NewHistory(orderID, order.Placed, 1000)
		require.NoError(t, err)

		require.Error(t, h.Append(order.Unknown, 2000))
		assert.Equal(t, 1, h.Len())
	})

	t.Run("mutating the returned slice must not affect the ledger", func(t *testing.T) {
		h, err := order.NewHistory(orderID, order.Placed, 1000)
		require.NoError(t, err)

		records := h.Records()
		records[0].Status = order.Delivered

		assert.Equal(t, order.Placed, h.Last().Status)
	})
}

func TestRestoreHistory(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("should restore from contiguous records", func(t *testing.T) {
		records := []order.TransitionRecord{
			{Seq: 0, Status: order.Placed, Timestamp: 1000},
			{Seq: 1, Status: order.Assigned, Timestamp: 2000},
		}

		h, err := order.RestoreHistory(orderID, records)

		require.NoError(t, err)
		assert.Equal(t, 2, h.Len())
		assert.Equal(t, records, h.Records())
	})

	t.Run("should reject empty record set", func(t *testing.T) {
		h, err := order.RestoreHistory(orderID, nil)

		require.ErrorIs(t, err, order.ErrInvalidStatus)
		assert.Nil(t, h)
	})

	t.Run("should reject gaps in sequence indices", func(t *testing.T) {
		records := []order.TransitionRecord{
			{Seq: 0, Status: order.Placed, Timestamp: 1000},
			{Seq: 2, Status: order.Assigned, Timestamp: 2000},
		}

		h, err := order.RestoreHistory(orderID, records)

		require.ErrorIs(t, err, order.ErrInvalidStatus)
		assert.Nil(t, h)
	})

	t.Run("should reject records with invalid status", func(t *testing.T) {
		records := []order.TransitionRecord{
			{Seq: 0, Status: order.Unknown, Timestamp: 1000},
		}

		h, err := order.RestoreHistory(orderID, records)

		require.Error(t, err)
		assert.Nil(t, h)
	})

	t.Run("should copy the input records", func(t *testing.T) {
		records := []order.TransitionRecord{
			{Seq: 0, Status: order.Placed, Timestamp: 1000},
		}

		h, err := order.RestoreHistory(orderID, records)
		require.NoError(t, err)

		records[0].Status = order.Delivered

		assert.Equal(t, order.Placed, h.Last().Status)
	})
}

func TestHistory_Validate(t *testing.T) {
	t.Run("should fail for nil and zero-value histories", func(t *testing.T) {
		var h *order.History
		require.Error(t, h.Validate())

		h = &order.History{}
		require.Error(t, h.Validate())
		assert.Equal(t, order.ErrHistoryIsNotConstructed, h.Validate())
	})
}
