package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "acai/internal/delivery/context"
	"acai/internal/domain/entity"
	domainerrors "acai/internal/domain/errors"
	"acai/internal/domain/pricing"
	"acai/internal/domain/repository"
	"acai/internal/errors"
	"acai/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type bowlService struct {
	bowlRepo  repository.BowlRepository
	storeRepo repository.StoreRepository
	logger    *slog.Logger
}

// BowlServiceParams holds dependencies for BowlService, injected by Fx.
type BowlServiceParams struct {
	fx.In

	BowlRepo  repository.BowlRepository
	StoreRepo repository.StoreRepository
	Logger    *slog.Logger
}

// NewBowlService creates the bowl builder service.
func NewBowlService(params BowlServiceParams) usecase.BowlUsecase {
	return &bowlService{
		bowlRepo:  params.BowlRepo,
		storeRepo: params.StoreRepo,
		logger:    params.Logger,
	}
}

func (srv *bowlService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Quote prices a selection against a listed store without opening a session.
func (srv *bowlService) Quote(ctx context.Context, input usecase.QuoteInput) (*pricing.Totals, error) {
	store, err := srv.listedStore(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}

	items := make([]entity.CatalogItem, 0, len(input.ItemIDs))
	for _, id := range input.ItemIDs {
		item, ok := store.Component(id)
		if !ok {
			return nil, domainerrors.ErrItemNotOffered.WithDetails(id.String())
		}
		items = append(items, item)
	}

	totals := pricing.Compute(items, pricing.RateOf(store))

	return &totals, nil
}

// StartBowl opens an empty session bound to a listed store.
func (srv *bowlService) StartBowl(ctx context.Context, storeID uuid.UUID) (*usecase.BowlOutput, error) {
	store, err := srv.listedStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	bowl := &entity.Bowl{
		ID:        uuid.New(),
		StoreID:   store.ID,
		Items:     []entity.CatalogItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := srv.bowlRepo.Create(ctx, bowl); err != nil {
		return nil, errors.Wrap(err, "failed to create bowl")
	}

	srv.log(ctx).Debug("Bowl started",
		slog.String("bowl_id", bowl.ID.String()),
		slog.String("store_id", store.ID.String()),
	)

	return bowlOutput(bowl, store), nil
}

func (srv *bowlService) GetBowl(ctx context.Context, bowlID uuid.UUID) (*usecase.BowlOutput, error) {
	bowl, err := srv.bowlRepo.FindByID(ctx, bowlID)
	if err != nil {
		return nil, bowlError(err)
	}

	store, err := srv.bowlStore(ctx, bowl)
	if err != nil {
		return nil, err
	}

	return bowlOutput(bowl, store), nil
}

// AddItem appends an item the bowl's store offers.
func (srv *bowlService) AddItem(ctx context.Context, bowlID, itemID uuid.UUID) (*usecase.BowlOutput, error) {
	bowl, err := srv.bowlRepo.FindByID(ctx, bowlID)
	if err != nil {
		return nil, bowlError(err)
	}

	store, err := srv.bowlStore(ctx, bowl)
	if err != nil {
		return nil, err
	}

	item, ok := store.Component(itemID)
	if !ok {
		return nil, domainerrors.ErrItemNotOffered.WithDetails(itemID.String())
	}

	updated, err := srv.bowlRepo.Modify(ctx, bowlID, func(b *entity.Bowl) error {
		b.Add(item)
		b.UpdatedAt = time.Now().UTC()

		return nil
	})
	if err != nil {
		return nil, bowlError(err)
	}

	return bowlOutput(updated, store), nil
}

// RemoveItemAt removes the item at index. An out-of-range index is ignored.
func (srv *bowlService) RemoveItemAt(ctx context.Context, bowlID uuid.UUID, index int) (*usecase.BowlOutput, error) {
	var removed bool
	updated, err := srv.bowlRepo.Modify(ctx, bowlID, func(b *entity.Bowl) error {
		if removed = b.RemoveAt(index); removed {
			b.UpdatedAt = time.Now().UTC()
		}

		return nil
	})
	if err != nil {
		return nil, bowlError(err)
	}
	if !removed {
		srv.log(ctx).Debug("Remove ignored, index out of range",
			slog.String("bowl_id", bowlID.String()),
			slog.Int("index", index),
			slog.Int("items", len(updated.Items)),
		)
	}

	store, err := srv.bowlStore(ctx, updated)
	if err != nil {
		return nil, err
	}

	return bowlOutput(updated, store), nil
}

// DiscardBowl ends the session.
func (srv *bowlService) DiscardBowl(ctx context.Context, bowlID uuid.UUID) error {
	if err := srv.bowlRepo.Delete(ctx, bowlID); err != nil {
		return bowlError(err)
	}

	return nil
}

func (srv *bowlService) listedStore(ctx context.Context, storeID uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}
	if !store.IsListed() {
		return nil, domainerrors.ErrStoreNotFound
	}

	return store, nil
}

// bowlStore loads the bowl's store. It need not be listed anymore: an open
// session keeps pricing against the store it started with.
func (srv *bowlService) bowlStore(ctx context.Context, bowl *entity.Bowl) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByID(ctx, bowl.StoreID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find bowl store")
	}

	return store, nil
}

func bowlError(err error) error {
	if errors.Is(err, repository.ErrBowlNotFound) {
		return domainerrors.ErrBowlNotFound
	}

	return errors.Wrap(err, "bowl repository")
}

func bowlOutput(bowl *entity.Bowl, store *entity.Store) *usecase.BowlOutput {
	return &usecase.BowlOutput{
		Bowl:   bowl,
		Totals: pricing.Compute(bowl.Items, pricing.RateOf(store)),
	}
}
