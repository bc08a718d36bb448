package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartStatusTransitions(t *testing.T) {
	assert.True(t, CartStatusDraft.CanTransitionTo(CartStatusPaid))
	assert.True(t, CartStatusPaid.CanTransitionTo(CartStatusConfirmed))

	// No skips, no backward moves, Confirmed is terminal
	assert.False(t, CartStatusDraft.CanTransitionTo(CartStatusConfirmed))
	assert.False(t, CartStatusPaid.CanTransitionTo(CartStatusDraft))
	assert.False(t, CartStatusConfirmed.CanTransitionTo(CartStatusDraft))
	assert.False(t, CartStatusConfirmed.CanTransitionTo(CartStatusPaid))
	assert.False(t, CartStatusDraft.CanTransitionTo(CartStatusDraft))
}

func TestCartStatusIsMutable(t *testing.T) {
	assert.True(t, CartStatusDraft.IsMutable())
	assert.False(t, CartStatusPaid.IsMutable())
	assert.False(t, CartStatusConfirmed.IsMutable())
}

func TestCartStatusJSONRoundTrip(t *testing.T) {
	for _, status := range []CartStatus{CartStatusDraft, CartStatusPaid, CartStatusConfirmed} {
		data, err := json.Marshal(status)
		require.NoError(t, err)

		var decoded CartStatus
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, status, decoded)
	}
}

func TestParseCartStatus(t *testing.T) {
	status, ok := ParseCartStatus("paid")
	require.True(t, ok)
	assert.Equal(t, CartStatusPaid, status)

	status, ok = ParseCartStatus("Draft")
	require.True(t, ok)
	assert.Equal(t, CartStatusDraft, status)

	_, ok = ParseCartStatus("cancelled")
	assert.False(t, ok)
}
