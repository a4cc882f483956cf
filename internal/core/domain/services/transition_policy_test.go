package services_test

import (
	"fmt"
	"testing"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/order"
	"github.com/ericks0nmartinez/burger/internal/core/domain/services"
	"github.com/ericks0nmartinez/burger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allValidStatuses = []order.Status{
	order.Awaiting,
	order.Preparing,
	order.Ready,
	order.OutForDelivery,
	order.Delivered,
	order.Cancelled,
}

func TestPermissiveTransitionPolicy(t *testing.T) {
	policy := services.NewPermissiveTransitionPolicy()

	t.Run("should allow every edge between valid statuses", func(t *testing.T) {
		for _, from := range allValidStatuses {
			for _, to := range allValidStatuses {
				t.Run(fmt.Sprintf("%s to %s", from.String(), to.String()), func(t *testing.T) {
					require.NoError(t, policy.Allow(from, to))
				})
			}
		}
	})

	t.Run("should reject invalid target status", func(t *testing.T) {
		err := policy.Allow(order.Awaiting, order.Unknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestWorkflowTransitionPolicy(t *testing.T) {
	policy := services.NewWorkflowTransitionPolicy()

	t.Run("should allow the forward workflow", func(t *testing.T) {
		allowed := [][2]order.Status{
			{order.Awaiting, order.Preparing},
			{order.Preparing, order.Ready},
			{order.Ready, order.Delivered},
			{order.Ready, order.OutForDelivery},
			{order.OutForDelivery, order.Delivered},
		}

		for _, edge := range allowed {
			t.Run(fmt.Sprintf("%s to %s", edge[0].String(), edge[1].String()), func(t *testing.T) {
				require.NoError(t, policy.Allow(edge[0], edge[1]))
			})
		}
	})

	t.Run("should allow cancellation from any non-final status", func(t *testing.T) {
		for _, from := range []order.Status{order.Awaiting, order.Preparing, order.Ready, order.OutForDelivery} {
			require.NoError(t, policy.Allow(from, order.Cancelled))
		}
	})

	t.Run("should reject skipping workflow steps", func(t *testing.T) {
		rejected := [][2]order.Status{
			{order.Awaiting, order.Ready},
			{order.Awaiting, order.Delivered},
			{order.Preparing, order.OutForDelivery},
			{order.Preparing, order.Awaiting},
			{order.Ready, order.Preparing},
		}

		for _, edge := range rejected {
			t.Run(fmt.Sprintf("%s to %s", edge[0].String(), edge[1].String()), func(t *testing.T) {
				err := policy.Allow(edge[0], edge[1])

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})

	t.Run("should reject transitions out of final statuses", func(t *testing.T) {
		for _, from := range []order.Status{order.Delivered, order.Cancelled} {
			for _, to := range allValidStatuses {
				err := policy.Allow(from, to)

				require.Error(t, err, "%s to %s should be rejected", from.String(), to.String())
				assert.Contains(t, err.Error(), "is final")
			}
		}
	})

	t.Run("should reject invalid target status", func(t *testing.T) {
		err := policy.Allow(order.Awaiting, order.Status(99))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
