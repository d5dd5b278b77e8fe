package guard_test

import (
	"errors"
	"testing"

	"orderflow/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("order not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_supplied_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("order must be created via NewOrder")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("each_aggregate_reports_its_own_error", func(t *testing.T) {
		testCases := []struct {
			name          string
			expectedError error
		}{
			{"order", errors.New("Order must be created via NewOrder")},
			{"history", errors.New("History must be created via NewHistory")},
			{"reputation", errors.New("Reputation must be created via NewReputation")},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				var g guard.ConstructorGuard // zero value
				assert.Equal(t, tc.expectedError, g.Validate(tc.expectedError))

				constructed := guard.NewConstructorGuard()
				assert.NoError(t, constructed.Validate(tc.expectedError))
			})
		}
	})

	t.Run("default_error_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardAggregatePattern exercises the guard the way the
// domain aggregates embed it: private fields, a constructor that runs the
// business rules, and a Validate method built on the guard.
func TestConstructorGuardAggregatePattern(t *testing.T) {
	var errRecordNotConstructed = errors.New("transition record must be created via newRecord")

	type record struct {
		seq       int
		timestamp uint64
		guard     guard.ConstructorGuard
	}

	newRecord := func(seq int, timestamp uint64) (record, error) {
		if seq < 0 {
			return record{}, errors.New("seq cannot be negative")
		}
		if timestamp == 0 {
			return record{}, errors.New("timestamp is required")
		}
		return record{
			seq:       seq,
			timestamp: timestamp,
			guard:     guard.NewConstructorGuard(),
		}, nil
	}

	validateRecord := func(r record) error {
		return r.guard.Validate(errRecordNotConstructed)
	}

	t.Run("constructor_produces_valid_object", func(t *testing.T) {
		r, err := newRecord(0, 1000)

		require.NoError(t, err)
		require.NoError(t, validateRecord(r))
		assert.Equal(t, 0, r.seq)
		assert.Equal(t, uint64(1000), r.timestamp)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var r record // zero value

		err := validateRecord(r)

		require.Error(t, err)
		assert.Equal(t, errRecordNotConstructed, err)
	})

	t.Run("constructor_enforces_business_rules_before_guarding", func(t *testing.T) {
		_, err := newRecord(-1, 1000)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "seq cannot be negative")

		_, err = newRecord(0, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timestamp is required")
	})

	t.Run("copies_of_a_constructed_object_stay_valid", func(t *testing.T) {
		r, err := newRecord(1, 2000)
		require.NoError(t, err)

		copied := r

		require.NoError(t, validateRecord(r))
		require.NoError(t, validateRecord(copied))
	})
}

// Validate is read-only, so concurrent ownership and transition checks on
// the same aggregate must not race.
func TestConstructorGuardConcurrentValidation(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 1000 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}
