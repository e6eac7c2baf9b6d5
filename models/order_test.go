package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("shipped")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusShipped, status)

	status, err = ParseOrderStatus("Cancelled")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusCancelled, status)

	_, err = ParseOrderStatus("returned")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOrderStatusTransitions(t *testing.T) {
	// Forward along the fulfillment sequence.
	assert.True(t, OrderStatusPending.CanTransition(OrderStatusProcessing))
	assert.True(t, OrderStatusPending.CanTransition(OrderStatusShipped))
	assert.True(t, OrderStatusProcessing.CanTransition(OrderStatusShipped))
	assert.True(t, OrderStatusShipped.CanTransition(OrderStatusDelivered))

	// No backward movement.
	assert.False(t, OrderStatusShipped.CanTransition(OrderStatusProcessing))
	assert.False(t, OrderStatusProcessing.CanTransition(OrderStatusPending))

	// Cancelled is reachable from every non-terminal state.
	assert.True(t, OrderStatusPending.CanTransition(OrderStatusCancelled))
	assert.True(t, OrderStatusProcessing.CanTransition(OrderStatusCancelled))
	assert.True(t, OrderStatusShipped.CanTransition(OrderStatusCancelled))

	// Terminal states accept nothing.
	for _, to := range []OrderStatus{
		OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled,
	} {
		assert.False(t, OrderStatusDelivered.CanTransition(to), "delivered -> %s", to)
		assert.False(t, OrderStatusCancelled.CanTransition(to), "cancelled -> %s", to)
	}
}

func TestCartItemMatches(t *testing.T) {
	item := CartItem{ProductID: 7, Size: "M", Color: "red"}

	assert.True(t, item.Matches(7, "M", "red"))
	assert.False(t, item.Matches(7, "L", "red"))
	assert.False(t, item.Matches(7, "M", "blue"))
	assert.False(t, item.Matches(8, "M", "red"))

	// Absent variants are distinct values, not wildcards.
	bare := CartItem{ProductID: 7}
	assert.True(t, bare.Matches(7, "", ""))
	assert.False(t, bare.Matches(7, "M", ""))
	assert.False(t, item.Matches(7, "", ""))
}
