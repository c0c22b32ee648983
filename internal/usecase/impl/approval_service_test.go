package impl

import (
	"context"
	"testing"

	"acai/internal/domain/entity"
	domainerrors "acai/internal/domain/errors"
	"acai/internal/domain/service"
	"acai/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createPendingStore(t *testing.T, env *testEnv) *entity.Store {
	t.Helper()

	env.publisher.EXPECT().
		PublishStoreEvent(mock.Anything, mock.MatchedBy(func(e *service.StoreEvent) bool {
			return e.Type == service.EventStoreSubmitted
		})).
		Return(nil).Once()

	store, err := env.storeService().CreateStore(context.Background(), env.newOwner(t), validStoreInput())
	require.NoError(t, err)

	return store
}

func isListed(t *testing.T, env *testEnv, storeID uuid.UUID) bool {
	t.Helper()

	result, err := env.storeService().ListVisibleStores(context.Background(), usecase.ListStoresInput{Sort: "price"})
	require.NoError(t, err)
	for _, s := range result.Stores {
		if s.ID == storeID {
			return true
		}
	}

	return false
}

func TestApprovalService_ApproveListsStore(t *testing.T) {
	env := newTestEnv(t)
	store := createPendingStore(t, env)
	svc := env.approvalService()
	ctx := context.Background()

	env.publisher.EXPECT().
		PublishStoreEvent(ctx, mock.MatchedBy(func(e *service.StoreEvent) bool {
			return e.Type == service.EventStoreApproved && e.StoreID == store.ID.String()
		})).
		Return(nil).Once()

	out, err := svc.ApproveStore(ctx, env.admin(t), store.ID, true)
	require.NoError(t, err)
	assert.True(t, out.Outcome.Changed)
	assert.Equal(t, entity.StoreStatusApproved, out.Store.Status)
	assert.True(t, out.Store.IsPublic)
	assert.True(t, isListed(t, env, store.ID))

	// Replaying the decision is a no-op: no error, no second event.
	again, err := svc.ApproveStore(ctx, env.admin(t), store.ID, true)
	require.NoError(t, err)
	assert.False(t, again.Outcome.Changed)
	assert.Equal(t, entity.StoreStatusApproved, again.Store.Status)
	assert.True(t, again.Store.IsPublic)
}

func TestApprovalService_RejectExcludesStore(t *testing.T) {
	env := newTestEnv(t)
	store := createPendingStore(t, env)
	svc := env.approvalService()
	ctx := context.Background()

	env.publisher.EXPECT().
		PublishStoreEvent(ctx, mock.MatchedBy(func(e *service.StoreEvent) bool {
			return e.Type == service.EventStoreRejected
		})).
		Return(nil).Once()

	out, err := svc.ApproveStore(ctx, env.admin(t), store.ID, false)
	require.NoError(t, err)
	assert.Equal(t, entity.StoreStatusRejected, out.Store.Status)
	assert.False(t, out.Store.IsPublic)
	assert.False(t, isListed(t, env, store.ID))

	// Rejection is terminal.
	_, err = svc.ApproveStore(ctx, env.admin(t), store.ID, true)
	assert.ErrorIs(t, err, domainerrors.ErrStatusTransition)

	current, err := env.stores.FindByID(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StoreStatusRejected, current.Status)
	assert.False(t, current.IsPublic)
}

func TestApprovalService_UnknownStoreLeavesDirectoryUnchanged(t *testing.T) {
	env := newTestEnv(t)
	svc := env.approvalService()
	ctx := context.Background()

	before, err := env.stores.FindAll(ctx)
	require.NoError(t, err)

	_, err = svc.ApproveStore(ctx, env.admin(t), uuid.New(), true)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)

	after, err := env.stores.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestApprovalService_RequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	store := createPendingStore(t, env)
	ctx := context.Background()

	for _, role := range []entity.Role{entity.RoleCustomer, entity.RoleStore, ""} {
		_, err := env.approvalService().ApproveStore(ctx, usecase.Actor{UserID: uuid.New(), Role: role}, store.ID, true)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	}

	current, err := env.stores.FindByID(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StoreStatusPending, current.Status)
}
