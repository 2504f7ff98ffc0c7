package order_test

import (
	"fmt"
	"testing"

	"orderlink/internal/core/domain/model/order"
	"orderlink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Created))
		assert.Equal(t, 2, int(order.Pending))
		assert.Equal(t, 3, int(order.Processing))
		assert.Equal(t, 4, int(order.Shipped))
		assert.Equal(t, 5, int(order.Delivered))
		assert.Equal(t, 6, int(order.Canceled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Created,
			order.Pending,
			order.Processing,
			order.Shipped,
			order.Delivered,
			order.Canceled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out-of-range status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(7),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct name for each status", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Unknown, "Unknown"},
			{order.Created, "Created"},
			{order.Pending, "Pending"},
			{order.Processing, "Processing"},
			{order.Shipped, "Shipped"},
			{order.Delivered, "Delivered"},
			{order.Canceled, "Canceled"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return Unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid status names", func(t *testing.T) {
		testCases := []struct {
			name     string
			expected order.Status
		}{
			{"Created", order.Created},
			{"Pending", order.Pending},
			{"Processing", order.Processing},
			{"Shipped", order.Shipped},
			{"Delivered", order.Delivered},
			{"Canceled", order.Canceled},
		}

		for _, tc := range testCases {
			status, err := order.StatusFromString(tc.name)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "pending", "Shippedd"} {
			_, err := order.StatusFromString(name)

			require.Error(t, err, "name %q should not parse", name)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Canceled.IsTerminal())

	for _, status := range []order.Status{order.Created, order.Pending, order.Processing, order.Shipped} {
		assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
	}
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow every forward transition", func(t *testing.T) {
		allowed := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Created, order.Pending},
			{order.Pending, order.Processing},
			{order.Processing, order.Shipped},
			{order.Shipped, order.Delivered},
			{order.Created, order.Canceled},
			{order.Pending, order.Canceled},
			{order.Processing, order.Canceled},
			{order.Shipped, order.Canceled},
		}

		for _, tc := range allowed {
			t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
				newStatus, err := tc.from.TransitionTo(tc.to)

				require.NoError(t, err)
				assert.Equal(t, tc.to, newStatus)
			})
		}
	})

	t.Run("should reject skipped and reversed transitions", func(t *testing.T) {
		rejected := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Created, order.Processing},
			{order.Created, order.Delivered},
			{order.Pending, order.Shipped},
			{order.Pending, order.Delivered},
			{order.Processing, order.Delivered},
			{order.Processing, order.Pending},
			{order.Shipped, order.Processing},
			{order.Delivered, order.Processing},
			{order.Delivered, order.Canceled},
			{order.Canceled, order.Pending},
			{order.Canceled, order.Shipped},
		}

		for _, tc := range rejected {
			t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
				_, err := tc.from.TransitionTo(tc.to)

				require.Error(t, err)
				assert.ErrorIs(t, err, order.ErrInvalidTransition)
				assert.Contains(t, err.Error(), fmt.Sprintf("%s -> %s", tc.from, tc.to))
			})
		}
	})

	t.Run("should reject invalid target status", func(t *testing.T) {
		_, err := order.Created.TransitionTo(order.Unknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, order.Created.CanTransitionTo(order.Pending))
	assert.True(t, order.Shipped.CanTransitionTo(order.Canceled))
	assert.False(t, order.Delivered.CanTransitionTo(order.Canceled))
	assert.False(t, order.Canceled.CanTransitionTo(order.Processing))
	assert.False(t, order.Created.CanTransitionTo(order.Created))
}
