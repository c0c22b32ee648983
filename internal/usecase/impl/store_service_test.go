package impl

import (
	"context"
	"sync"
	"testing"

	"acai/internal/domain/directory"
	"acai/internal/domain/entity"
	domainerrors "acai/internal/domain/errors"
	"acai/internal/domain/repository"
	"acai/internal/domain/service"
	"acai/internal/infra/persistence/memory"
	"acai/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStoreService_CreateStore_Success(t *testing.T) {
	env := newTestEnv(t)
	svc := env.storeService()
	ctx := context.Background()
	owner := env.newOwner(t)

	env.publisher.EXPECT().
		PublishStoreEvent(ctx, mock.MatchedBy(func(e *service.StoreEvent) bool {
			return e.Type == service.EventStoreSubmitted && e.Status == "pending" && e.ActorID == owner.UserID.String()
		})).
		Return(nil)

	input := validStoreInput()
	input.ComponentIDs = append(input.ComponentIDs, component("1")) // duplicate id
	store, err := svc.CreateStore(ctx, owner, input)
	require.NoError(t, err)

	assert.Equal(t, entity.StoreStatusPending, store.Status)
	assert.False(t, store.IsPublic)
	assert.Equal(t, owner.UserID, store.OwnerID)
	assert.Len(t, store.Components, 2, "components are de-duplicated by id")

	user, err := env.users.FindByID(ctx, owner.UserID)
	require.NoError(t, err)
	require.NotNil(t, user.StoreID)
	assert.Equal(t, store.ID, *user.StoreID)

	// Pending stores are not listed.
	result, err := svc.ListVisibleStores(ctx, usecase.ListStoresInput{Sort: "price"})
	require.NoError(t, err)
	for _, s := range result.Stores {
		assert.NotEqual(t, store.ID, s.ID)
	}
}

func TestStoreService_CreateStore_FreeDeliveryHasNoFee(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.publisher.EXPECT().PublishStoreEvent(ctx, mock.Anything).Return(nil)

	input := validStoreInput()
	input.DeliveryType = entity.DeliveryFree
	input.DeliveryFee = 12

	store, err := env.storeService().CreateStore(ctx, env.newOwner(t), input)
	require.NoError(t, err)
	assert.Zero(t, store.DeliveryFee)
}

func TestStoreService_CreateStore_PublishFailureIsNotFatal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.publisher.EXPECT().PublishStoreEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	store, err := env.storeService().CreateStore(ctx, env.newOwner(t), validStoreInput())
	require.NoError(t, err)
	assert.NotNil(t, store)
}

func TestStoreService_CreateStore_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.CreateStoreInput)
	}{
		{"missing name", func(in *usecase.CreateStoreInput) { in.Profile.Name = "  " }},
		{"missing city", func(in *usecase.CreateStoreInput) { in.Profile.City = "" }},
		{"unknown state", func(in *usecase.CreateStoreInput) { in.Profile.State = "Texas" }},
		{"zero price", func(in *usecase.CreateStoreInput) { in.PricePerKg = 0 }},
		{"negative fee", func(in *usecase.CreateStoreInput) { in.DeliveryFee = -1 }},
		{"bad delivery type", func(in *usecase.CreateStoreInput) { in.DeliveryType = "DRONE" }},
		{"no components", func(in *usecase.CreateStoreInput) { in.ComponentIDs = nil }},
		{"unknown component", func(in *usecase.CreateStoreInput) { in.ComponentIDs = []uuid.UUID{uuid.New()} }},
		{"bad location", func(in *usecase.CreateStoreInput) { in.Location = &entity.Coordinates{Lat: 100} }},
		{"price out of range", func(in *usecase.CreateStoreInput) { in.PricePerKg = 1e308 }},
		{"fee out of range", func(in *usecase.CreateStoreInput) { in.DeliveryFee = 1e9 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			owner := env.newOwner(t)
			input := validStoreInput()
			tt.mutate(&input)

			_, err := env.storeService().CreateStore(context.Background(), owner, input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			user, err := env.users.FindByID(context.Background(), owner.UserID)
			require.NoError(t, err)
			assert.Nil(t, user.StoreID)
		})
	}
}

func TestStoreService_CreateStore_Guards(t *testing.T) {
	env := newTestEnv(t)
	svc := env.storeService()
	ctx := context.Background()

	_, err := svc.CreateStore(ctx, usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}, validStoreInput())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	linked, err := env.users.FindByEmail(ctx, "store@owner.com")
	require.NoError(t, err)
	_, err = svc.CreateStore(ctx, usecase.Actor{UserID: linked.ID, Role: entity.RoleStore}, validStoreInput())
	assert.ErrorIs(t, err, domainerrors.ErrStoreAlreadyLinked)

	_, err = svc.CreateStore(ctx, usecase.Actor{UserID: uuid.New(), Role: entity.RoleStore}, validStoreInput())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestStoreService_CreateStore_ConcurrentForOneOwner(t *testing.T) {
	env := newTestEnv(t)
	svc := env.storeService()
	ctx := context.Background()
	owner := env.newOwner(t)
	env.publisher.EXPECT().PublishStoreEvent(ctx, mock.Anything).Return(nil).Once()

	results := make([]error, 20)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = svc.CreateStore(ctx, owner, validStoreInput())
		}()
	}
	wg.Wait()

	created := 0
	for _, err := range results {
		if err == nil {
			created++

			continue
		}
		assert.ErrorIs(t, err, domainerrors.ErrStoreAlreadyLinked)
	}
	assert.Equal(t, 1, created)

	all, err := env.stores.FindAll(ctx)
	require.NoError(t, err)
	var owned []*entity.Store
	for _, s := range all {
		if s.OwnerID == owner.UserID {
			owned = append(owned, s)
		}
	}
	require.Len(t, owned, 1)

	user, err := env.users.FindByID(ctx, owner.UserID)
	require.NoError(t, err)
	require.NotNil(t, user.StoreID)
	assert.Equal(t, owned[0].ID, *user.StoreID)
}

// failingStoreRepository refuses every Create.
type failingStoreRepository struct {
	repository.StoreRepository
}

func (failingStoreRepository) Create(context.Context, *entity.Store) error {
	return errors.New("disk full")
}

func TestStoreService_CreateStore_SaveFailureReleasesLink(t *testing.T) {
	env := newTestEnv(t)
	env.stores = failingStoreRepository{StoreRepository: env.stores}
	ctx := context.Background()
	owner := env.newOwner(t)

	_, err := env.storeService().CreateStore(ctx, owner, validStoreInput())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrStoreAlreadyLinked)

	user, err := env.users.FindByID(ctx, owner.UserID)
	require.NoError(t, err)
	assert.Nil(t, user.StoreID, "the owner can retry the setup")
}

func TestStoreService_ListVisibleStores(t *testing.T) {
	env := newTestEnv(t)
	svc := env.storeService()
	ctx := context.Background()

	t.Run("state filter", func(t *testing.T) {
		result, err := svc.ListVisibleStores(ctx, usecase.ListStoresInput{State: "Rio de Janeiro", Sort: "price"})
		require.NoError(t, err)
		require.Len(t, result.Stores, 1)
		assert.Equal(t, "Point do Açaí", result.Stores[0].Name)
	})

	t.Run("city filter is case-insensitive", func(t *testing.T) {
		result, err := svc.ListVisibleStores(ctx, usecase.ListStoresInput{City: "rio", Sort: "alpha"})
		require.NoError(t, err)
		require.Len(t, result.Stores, 1)
		assert.Equal(t, "Rio de Janeiro", result.Stores[0].City)
	})

	t.Run("price sort", func(t *testing.T) {
		result, err := svc.ListVisibleStores(ctx, usecase.ListStoresInput{Sort: "price"})
		require.NoError(t, err)
		require.Len(t, result.Stores, 2)
		assert.Equal(t, memory.DemoStoreMania, result.Stores[0].ID)
		assert.False(t, result.LocationUnavailable)
	})

	t.Run("unknown state", func(t *testing.T) {
		_, err := svc.ListVisibleStores(ctx, usecase.ListStoresInput{State: "Narnia"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown sort", func(t *testing.T) {
		_, err := svc.ListVisibleStores(ctx, usecase.ListStoresInput{Sort: "rating"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestStoreService_ListVisibleStores_Proximity(t *testing.T) {
	env := newTestEnv(t)
	svc := env.storeService()
	ctx := context.Background()

	lat, lng := -22.95, -43.2
	where := service.LocateRequest{Lat: &lat, Lng: &lng}
	env.locator.EXPECT().Locate(ctx, where).Return(entity.Coordinates{Lat: lat, Lng: lng}, nil).Once()

	// Default sort from config is proximity.
	result, err := svc.ListVisibleStores(ctx, usecase.ListStoresInput{Where: where})
	require.NoError(t, err)
	require.Len(t, result.Stores, 2)
	assert.Equal(t, memory.DemoStorePoint, result.Stores[0].ID, "Rio store is closer to a Rio customer")
	assert.False(t, result.LocationUnavailable)

	env.locator.EXPECT().Locate(ctx, service.LocateRequest{}).Return(entity.Coordinates{}, domainerrors.ErrLocationUnavailable).Once()
	result, err = svc.ListVisibleStores(ctx, usecase.ListStoresInput{Sort: string(directory.SortProximity)})
	require.NoError(t, err)
	assert.True(t, result.LocationUnavailable)
	require.Len(t, result.Stores, 2)
	assert.Equal(t, memory.DemoStoreMania, result.Stores[0].ID, "input order is kept without a location")
}

func TestStoreService_SetStoreLocation(t *testing.T) {
	env := newTestEnv(t)
	svc := env.storeService()
	ctx := context.Background()

	owner, err := env.users.FindByEmail(ctx, "store@owner.com")
	require.NoError(t, err)
	actor := usecase.Actor{UserID: owner.ID, Role: entity.RoleStore}

	lat, lng := -23.5, -46.6
	where := service.LocateRequest{Lat: &lat, Lng: &lng}
	env.locator.EXPECT().Locate(ctx, where).Return(entity.Coordinates{Lat: lat, Lng: lng}, nil).Once()

	store, err := svc.SetStoreLocation(ctx, actor, memory.DemoStoreMania, where)
	require.NoError(t, err)
	require.NotNil(t, store.Location)
	assert.InDelta(t, -23.5, store.Location.Lat, 1e-9)

	env.locator.EXPECT().Locate(ctx, service.LocateRequest{}).Return(entity.Coordinates{}, domainerrors.ErrLocationUnavailable).Once()
	_, err = svc.SetStoreLocation(ctx, actor, memory.DemoStoreMania, service.LocateRequest{})
	assert.ErrorIs(t, err, domainerrors.ErrLocationUnavailable)

	unchanged, err := env.stores.FindByID(ctx, memory.DemoStoreMania)
	require.NoError(t, err)
	assert.InDelta(t, -23.5, unchanged.Location.Lat, 1e-9)

	_, err = svc.SetStoreLocation(ctx, actor, memory.DemoStorePoint, where)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = svc.SetStoreLocation(ctx, actor, uuid.New(), where)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestStoreService_GetStore(t *testing.T) {
	env := newTestEnv(t)
	svc := env.storeService()
	ctx := context.Background()
	owner := env.newOwner(t)
	env.publisher.EXPECT().PublishStoreEvent(ctx, mock.Anything).Return(nil)

	pending, err := svc.CreateStore(ctx, owner, validStoreInput())
	require.NoError(t, err)

	_, err = svc.GetStore(ctx, nil, pending.ID)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound, "anonymous visitors only see listed stores")

	got, err := svc.GetStore(ctx, &owner, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, pending.ID, got.ID)

	admin := env.admin(t)
	_, err = svc.GetStore(ctx, &admin, pending.ID)
	require.NoError(t, err)

	listed, err := svc.GetStore(ctx, nil, memory.DemoStorePoint)
	require.NoError(t, err)
	assert.Equal(t, "Point do Açaí", listed.Name)
}

func TestStoreService_ListPendingStores(t *testing.T) {
	env := newTestEnv(t)
	svc := env.storeService()
	ctx := context.Background()
	env.publisher.EXPECT().PublishStoreEvent(ctx, mock.Anything).Return(nil)

	created, err := svc.CreateStore(ctx, env.newOwner(t), validStoreInput())
	require.NoError(t, err)

	pending, err := svc.ListPendingStores(ctx, env.admin(t))
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, created.ID, pending[0].ID)

	_, err = svc.ListPendingStores(ctx, usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestStoreService_StoreQR(t *testing.T) {
	env := newTestEnv(t)
	svc := env.storeService()
	ctx := context.Background()

	env.qrcode.EXPECT().GenerateStoreQR(memory.DemoStoreMania).Return([]byte{0x89, 'P', 'N', 'G'}, nil)
	png, err := svc.StoreQR(ctx, memory.DemoStoreMania)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)

	_, err = svc.StoreQR(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}
