package approval

import (
	"testing"
	"time"

	"acai/internal/domain/entity"
	domainerrors "acai/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingStore() *entity.Store {
	return &entity.Store{Status: entity.StoreStatusPending}
}

func TestApply_Approve(t *testing.T) {
	store := pendingStore()
	now := time.Now()

	out, err := Apply(store, DecisionApprove, now)
	require.NoError(t, err)

	assert.True(t, out.Changed)
	assert.Equal(t, entity.StoreStatusPending, out.From)
	assert.Equal(t, entity.StoreStatusApproved, store.Status)
	assert.True(t, store.IsPublic)
	assert.Equal(t, now, store.UpdatedAt)
}

func TestApply_Reject(t *testing.T) {
	store := pendingStore()

	out, err := Apply(store, DecisionReject, time.Now())
	require.NoError(t, err)

	assert.True(t, out.Changed)
	assert.Equal(t, entity.StoreStatusRejected, store.Status)
	assert.False(t, store.IsPublic)
}

func TestApply_ReplayIsIdempotent(t *testing.T) {
	for _, decision := range []Decision{DecisionApprove, DecisionReject} {
		t.Run(string(decision), func(t *testing.T) {
			store := pendingStore()
			_, err := Apply(store, decision, time.Now())
			require.NoError(t, err)
			snapshot := *store

			out, err := Apply(store, decision, time.Now().Add(time.Hour))
			require.NoError(t, err)

			assert.False(t, out.Changed)
			assert.Equal(t, snapshot, *store)
		})
	}
}

func TestApply_TerminalStatesDoNotCross(t *testing.T) {
	tests := []struct {
		name     string
		first    Decision
		second   Decision
		expected entity.StoreStatus
		public   bool
	}{
		{"approved cannot be rejected", DecisionApprove, DecisionReject, entity.StoreStatusApproved, true},
		{"rejected cannot be approved", DecisionReject, DecisionApprove, entity.StoreStatusRejected, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := pendingStore()
			_, err := Apply(store, tt.first, time.Now())
			require.NoError(t, err)

			out, err := Apply(store, tt.second, time.Now())
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrStatusTransition)
			assert.False(t, out.Changed)
			assert.Equal(t, tt.expected, store.Status)
			assert.Equal(t, tt.public, store.IsPublic)
		})
	}
}

func TestDecisionFromBool(t *testing.T) {
	assert.Equal(t, DecisionApprove, DecisionFromBool(true))
	assert.Equal(t, DecisionReject, DecisionFromBool(false))
}
