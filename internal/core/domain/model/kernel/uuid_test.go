package kernel_test

import (
	"testing"

	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const knownUUID = "550e8400-e29b-41d4-a716-446655440000"

func TestNewUUID(t *testing.T) {
	t.Run("should mint a valid identifier", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NoError(t, id.Validate())
		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id.String())
	})

	t.Run("should mint distinct identifiers per call", func(t *testing.T) {
		// Orders, customers, and transaction references all draw from the
		// same generator, so collisions would corrupt ownership checks.
		orderID := kernel.NewUUID()
		customerID := kernel.NewUUID()
		txID := kernel.NewUUID()

		assert.False(t, orderID.IsEqual(customerID))
		assert.False(t, orderID.IsEqual(txID))
		assert.False(t, customerID.IsEqual(txID))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should parse standard and alternate textual forms", func(t *testing.T) {
		testCases := []struct {
			name  string
			input string
		}{
			{"canonical", knownUUID},
			{"braced", "{" + knownUUID + "}"},
			{"urn prefixed", "urn:uuid:" + knownUUID},
			{"without hyphens", "550e8400e29b41d4a716446655440000"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				id, err := kernel.UUIDFromString(tc.input)

				require.NoError(t, err)
				assert.Equal(t, knownUUID, id.String())
				assert.NoError(t, id.Validate())
			})
		}
	})

	t.Run("should reject malformed identifiers", func(t *testing.T) {
		testCases := []string{
			"",
			"not-a-uuid",
			"550e8400-e29b-41d4-a716",
			knownUUID + "-extra",
			"zzze8400-e29b-41d4-a716-446655440000",
		}

		for _, input := range testCases {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, "expected error for input: %s", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should restore identifier from 16 bytes", func(t *testing.T) {
		raw := []byte{
			0x55, 0x0e, 0x84, 0x00, 0xe2, 0x9b, 0x41, 0xd4,
			0xa7, 0x16, 0x44, 0x66, 0x55, 0x44, 0x00, 0x00,
		}

		id, err := kernel.UUIDFromBytes(raw)

		require.NoError(t, err)
		assert.Equal(t, knownUUID, id.String())
	})

	t.Run("should reject wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x55, 0x0e, 0x84})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject all-zero bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("should match identifiers parsed from the same string", func(t *testing.T) {
		// An order identifier arriving over HTTP must compare equal to the
		// one restored from the database row.
		fromRequest, err := kernel.UUIDFromString(knownUUID)
		require.NoError(t, err)
		fromRow, err := kernel.UUIDFromString(knownUUID)
		require.NoError(t, err)

		assert.True(t, fromRequest.IsEqual(fromRow))
		assert.True(t, fromRow.IsEqual(fromRequest))
	})

	t.Run("should not match distinct identifiers", func(t *testing.T) {
		assert.False(t, kernel.NewUUID().IsEqual(kernel.NewUUID()))
	})

	t.Run("zero values compare equal to each other only", func(t *testing.T) {
		var a, b kernel.UUID

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(kernel.NewUUID()))
	})
}

func TestUUID_Bytes(t *testing.T) {
	t.Run("should expose the underlying value for persistence", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.Equal(t, id.String(), id.Bytes().String())
	})

	t.Run("mutating the returned value leaves the identifier intact", func(t *testing.T) {
		id := kernel.NewUUID()
		before := id.String()

		raw := id.Bytes()
		for i := range raw {
			raw[i] = 0xFF
		}

		assert.Equal(t, before, id.String())
		assert.NotEqual(t, id.String(), uuid.UUID(raw).String())
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("should accept constructed identifier", func(t *testing.T) {
		assert.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var id kernel.UUID

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})

	t.Run("should reject the nil UUID even when parsed", func(t *testing.T) {
		id, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})

	t.Run("should catch an identifier field left unset", func(t *testing.T) {
		// Aggregates restored from incomplete rows surface this through
		// their own Validate.
		var ref struct {
			OrderID kernel.UUID
		}

		assert.Error(t, ref.OrderID.Validate())
	})
}
