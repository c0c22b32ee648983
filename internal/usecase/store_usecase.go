package usecase

import (
	"context"

	"acai/internal/domain/directory"
	"acai/internal/domain/entity"
	"acai/internal/domain/service"

	"github.com/google/uuid"
)

// CreateStoreInput defines the data collected by the store setup form.
type CreateStoreInput struct {
	Profile      entity.StoreProfile
	DeliveryType entity.DeliveryType
	DeliveryFee  float64
	PricePerKg   float64
	ComponentIDs []uuid.UUID
	Location     *entity.Coordinates
}

// ListStoresInput is a directory request. Sort is the raw query value.
type ListStoresInput struct {
	State string
	City  string
	Sort  string
	Where service.LocateRequest
}

// StoreUsecase defines store setup and the public directory.
type StoreUsecase interface {
	// CreateStore registers the actor's store in pending status and links it to the actor.
	CreateStore(ctx context.Context, actor Actor, input CreateStoreInput) (*entity.Store, error)

	// SetStoreLocation captures the owner's current position as the store location.
	SetStoreLocation(ctx context.Context, actor Actor, storeID uuid.UUID, where service.LocateRequest) (*entity.Store, error)

	// GetStore returns a listed store. Owners and admins may also read unlisted ones.
	GetStore(ctx context.Context, actor *Actor, storeID uuid.UUID) (*entity.Store, error)

	// ListVisibleStores filters and sorts the approved, public stores.
	ListVisibleStores(ctx context.Context, input ListStoresInput) (*directory.Result, error)

	// ListPendingStores returns the stores awaiting an admin decision.
	ListPendingStores(ctx context.Context, actor Actor) ([]*entity.Store, error)

	// StoreQR renders the share code of a listed store.
	StoreQR(ctx context.Context, storeID uuid.UUID) ([]byte, error)
}
