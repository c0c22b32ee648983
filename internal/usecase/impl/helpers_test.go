package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"acai/config"
	"acai/internal/domain/entity"
	"acai/internal/domain/repository"
	"acai/internal/infra/persistence/memory"
	mockSvc "acai/internal/mocks/service"
	"acai/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	stores    repository.StoreRepository
	users     repository.UserRepository
	catalog   repository.CatalogRepository
	bowls     repository.BowlRepository
	publisher *mockSvc.MockEventPublisher
	locator   *mockSvc.MockLocator
	qrcode    *mockSvc.MockQRCodeService
	logger    *slog.Logger
	cfg       *config.Config
}

// newTestEnv returns repositories loaded with the demo data.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		stores:    memory.NewStoreRepository(),
		users:     memory.NewUserRepository(),
		catalog:   memory.NewCatalogRepository(),
		bowls:     memory.NewBowlRepository(),
		publisher: mockSvc.NewMockEventPublisher(t),
		locator:   mockSvc.NewMockLocator(t),
		qrcode:    mockSvc.NewMockQRCodeService(t),
		logger:    slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})),
		cfg: &config.Config{
			Marketplace: &config.MarketplaceConfig{DefaultSort: "proximity"},
		},
	}
	require.NoError(t, memory.Seed(context.Background(), env.catalog, env.stores, env.users, time.Now()))

	return env
}

func (env *testEnv) storeService() usecase.StoreUsecase {
	return NewStoreService(StoreServiceParams{
		StoreRepo:   env.stores,
		UserRepo:    env.users,
		CatalogRepo: env.catalog,
		Locator:     env.locator,
		QRCodeSvc:   env.qrcode,
		Publisher:   env.publisher,
		Config:      env.cfg,
		Logger:      env.logger,
	})
}

func (env *testEnv) approvalService() usecase.ApprovalUsecase {
	return NewApprovalService(ApprovalServiceParams{
		StoreRepo: env.stores,
		Publisher: env.publisher,
		Logger:    env.logger,
	})
}

func (env *testEnv) bowlService() usecase.BowlUsecase {
	return NewBowlService(BowlServiceParams{
		BowlRepo:  env.bowls,
		StoreRepo: env.stores,
		Logger:    env.logger,
	})
}

func (env *testEnv) catalogService() usecase.CatalogUsecase {
	return NewCatalogService(CatalogServiceParams{
		CatalogRepo: env.catalog,
		Logger:      env.logger,
	})
}

// newOwner registers a store-role user without a store.
func (env *testEnv) newOwner(t *testing.T) usecase.Actor {
	t.Helper()

	user := &entity.User{ID: uuid.New(), Email: uuid.NewString() + "@loja.com", Role: entity.RoleStore}
	require.NoError(t, env.users.Create(context.Background(), user))

	return usecase.Actor{UserID: user.ID, Email: user.Email, Role: entity.RoleStore}
}

func (env *testEnv) admin(t *testing.T) usecase.Actor {
	t.Helper()

	user, err := env.users.FindByEmail(context.Background(), "admin@test.com")
	require.NoError(t, err)

	return usecase.Actor{UserID: user.ID, Email: user.Email, Role: entity.RoleAdmin}
}

func component(key string) uuid.UUID {
	return memory.SeedID("component", key)
}

func validStoreInput() usecase.CreateStoreInput {
	return usecase.CreateStoreInput{
		Profile: entity.StoreProfile{
			Name:  "Açaí do Porto",
			State: "Bahia",
			City:  "Salvador",
		},
		DeliveryType: entity.DeliveryFixed,
		DeliveryFee:  4,
		PricePerKg:   38,
		ComponentIDs: []uuid.UUID{component("1"), component("4")},
	}
}
