package order_test

import (
	"testing"

	"orderlink/internal/core/domain/model/order"
	"orderlink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingID(t *testing.T) {
	t.Run("should generate 12 lowercase hex characters", func(t *testing.T) {
		id, err := order.NewTrackingID()

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Len(t, id.String(), order.TrackingIDLength)
		assert.Regexp(t, "^[0-9a-f]{12}$", id.String())
	})

	t.Run("should generate pairwise distinct tokens across 10000 calls", func(t *testing.T) {
		seen := make(map[string]struct{}, 10000)

		for range 10000 {
			id, err := order.NewTrackingID()
			require.NoError(t, err)

			_, duplicate := seen[id.String()]
			require.False(t, duplicate, "duplicate token %s", id.String())
			seen[id.String()] = struct{}{}
		}
	})
}

func TestTrackingIDFromString(t *testing.T) {
	t.Run("should accept a generated token", func(t *testing.T) {
		generated, err := order.NewTrackingID()
		require.NoError(t, err)

		parsed, err := order.TrackingIDFromString(generated.String())

		require.NoError(t, err)
		assert.True(t, generated.IsEqual(parsed))
	})

	t.Run("should reject wrong length", func(t *testing.T) {
		for _, raw := range []string{"", "abc", "0123456789abcd"} {
			_, err := order.TrackingIDFromString(raw)

			require.Error(t, err, "token %q should not parse", raw)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject non-hex characters", func(t *testing.T) {
		_, err := order.TrackingIDFromString("0123456789zz")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject uppercase hex", func(t *testing.T) {
		_, err := order.TrackingIDFromString("0123456789AB")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTrackingID_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var id order.TrackingID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrTrackingIDIsNotConstructed, err)
	})
}
