package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"acai/config"
	deliverycontext "acai/internal/delivery/context"
	"acai/internal/domain/directory"
	"acai/internal/domain/entity"
	domainerrors "acai/internal/domain/errors"
	"acai/internal/domain/repository"
	"acai/internal/domain/service"
	"acai/internal/errors"
	"acai/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

type storeService struct {
	storeRepo   repository.StoreRepository
	userRepo    repository.UserRepository
	catalogRepo repository.CatalogRepository
	locator     service.Locator
	qrcodeSvc   service.QRCodeService
	publisher   service.EventPublisher
	defaultSort directory.SortKey
	validate    *validator.Validate
	logger      *slog.Logger
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	StoreRepo   repository.StoreRepository
	UserRepo    repository.UserRepository
	CatalogRepo repository.CatalogRepository
	Locator     service.Locator
	QRCodeSvc   service.QRCodeService
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewStoreService creates a new store service instance
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	defaultSort := directory.DefaultSort
	if params.Config.Marketplace != nil {
		if key, ok := directory.ParseSortKey(params.Config.Marketplace.DefaultSort); ok {
			defaultSort = key
		} else {
			params.Logger.Warn("Unknown marketplace.defaultSort, using default",
				slog.String("configured", params.Config.Marketplace.DefaultSort),
				slog.String("default", string(directory.DefaultSort)),
			)
		}
	}

	return &storeService{
		storeRepo:   params.StoreRepo,
		userRepo:    params.UserRepo,
		catalogRepo: params.CatalogRepo,
		locator:     params.Locator,
		qrcodeSvc:   params.QRCodeSvc,
		publisher:   params.Publisher,
		defaultSort: defaultSort,
		validate:    newValidator(),
		logger:      params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// storeRules are the setup form constraints that are not part of the profile.
type storeRules struct {
	Name         string      `validate:"required"`
	City         string      `validate:"required"`
	PricePerKg   float64     `validate:"gt=0,lte=10000"`
	DeliveryFee  float64     `validate:"gte=0,lte=1000"`
	ComponentIDs []uuid.UUID `validate:"min=1"`
}

func (srv *storeService) validateStoreInput(input *usecase.CreateStoreInput) error {
	input.Profile = trimProfile(input.Profile)

	if err := srv.validate.Struct(storeRules{
		Name:         input.Profile.Name,
		City:         input.Profile.City,
		PricePerKg:   input.PricePerKg,
		DeliveryFee:  input.DeliveryFee,
		ComponentIDs: input.ComponentIDs,
	}); err != nil {
		return validationFailed(err)
	}
	if !entity.IsBrazilianState(input.Profile.State) {
		return domainerrors.ErrValidationFailed.WithDetails("estado inválido: " + input.Profile.State)
	}
	if !input.DeliveryType.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("tipo de entrega inválido: " + string(input.DeliveryType))
	}
	if input.Location != nil && !input.Location.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("coordenadas inválidas")
	}

	return nil
}

func trimProfile(p entity.StoreProfile) entity.StoreProfile {
	for _, field := range []*string{
		&p.Name, &p.CNPJ, &p.OwnerName, &p.OwnerPhone, &p.Instagram,
		&p.State, &p.City, &p.Neighborhood, &p.Address, &p.LogoURL,
	} {
		*field = strings.TrimSpace(*field)
	}

	return p
}

// CreateStore registers the actor's store in pending status and links it to the actor.
func (srv *storeService) CreateStore(ctx context.Context, actor usecase.Actor, input usecase.CreateStoreInput) (*entity.Store, error) {
	if !actor.Is(entity.RoleStore) {
		return nil, domainerrors.ErrForbidden
	}
	if err := srv.validateStoreInput(&input); err != nil {
		return nil, err
	}

	components, err := srv.catalogRepo.FindByIDs(ctx, input.ComponentIDs)
	if err != nil {
		if errors.Is(err, repository.ErrCatalogItemNotFound) {
			return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}

		return nil, errors.Wrap(err, "failed to resolve store components")
	}

	fee := input.DeliveryFee
	if input.DeliveryType == entity.DeliveryFree {
		fee = 0
	}

	now := time.Now().UTC()
	storeID := uuid.New()

	// The owner check and the link are one step; the store is saved after.
	owner, err := srv.userRepo.Modify(ctx, actor.UserID, func(user *entity.User) error {
		if user.StoreID != nil {
			return domainerrors.ErrStoreAlreadyLinked
		}
		user.StoreID = &storeID
		user.UpdatedAt = now

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, domainerrors.ErrUserNotFound
		case errors.Is(err, domainerrors.ErrStoreAlreadyLinked):
			return nil, domainerrors.ErrStoreAlreadyLinked
		default:
			return nil, errors.Wrap(err, "failed to link store to owner")
		}
	}

	store := &entity.Store{
		ID:           storeID,
		OwnerID:      owner.ID,
		StoreProfile: input.Profile,
		Location:     input.Location,
		DeliveryType: input.DeliveryType,
		DeliveryFee:  fee,
		PricePerKg:   input.PricePerKg,
		Components:   entity.DedupeComponents(components),
		IsPublic:     false,
		Status:       entity.StoreStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.storeRepo.Create(ctx, store); err != nil {
		srv.unlinkStore(ctx, owner.ID, storeID)

		return nil, errors.Wrap(err, "failed to create store")
	}

	srv.log(ctx).Info("Store submitted for approval",
		slog.String("store_id", store.ID.String()),
		slog.String("owner_id", owner.ID.String()),
		slog.Int("components", len(store.Components)),
	)
	publishStoreEvent(ctx, srv.log(ctx), srv.publisher, newStoreEvent(ctx, service.EventStoreSubmitted, store, actor.UserID))

	return store, nil
}

// unlinkStore releases a link reserved by CreateStore when the store could not be saved.
func (srv *storeService) unlinkStore(ctx context.Context, ownerID, storeID uuid.UUID) {
	_, err := srv.userRepo.Modify(ctx, ownerID, func(user *entity.User) error {
		if user.StoreID != nil && *user.StoreID == storeID {
			user.StoreID = nil
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to release store link",
			slog.String("owner_id", ownerID.String()),
			slog.String("store_id", storeID.String()),
			slog.Any("error", err),
		)
	}
}

// SetStoreLocation captures the owner's current position. Only the owner may set it.
func (srv *storeService) SetStoreLocation(ctx context.Context, actor usecase.Actor, storeID uuid.UUID, where service.LocateRequest) (*entity.Store, error) {
	store, err := srv.findStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store.OwnerID != actor.UserID {
		return nil, domainerrors.ErrForbidden
	}

	coords, err := srv.locator.Locate(ctx, where)
	if err != nil {
		srv.log(ctx).Info("Store location unavailable",
			slog.String("store_id", storeID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	updated, err := srv.storeRepo.Modify(ctx, storeID, func(s *entity.Store) error {
		s.Location = &coords
		s.UpdatedAt = time.Now().UTC()

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to update store location")
	}

	return updated, nil
}

// GetStore returns a listed store. The owner and admins may also read it while unlisted.
func (srv *storeService) GetStore(ctx context.Context, actor *usecase.Actor, storeID uuid.UUID) (*entity.Store, error) {
	store, err := srv.findStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store.IsListed() {
		return store, nil
	}
	if actor != nil && (actor.Is(entity.RoleAdmin) || actor.UserID == store.OwnerID) {
		return store, nil
	}

	return nil, domainerrors.ErrStoreNotFound
}

// ListVisibleStores filters and sorts the approved, public stores. A proximity sort
// without a position degrades to the input order with LocationUnavailable set.
func (srv *storeService) ListVisibleStores(ctx context.Context, input usecase.ListStoresInput) (*directory.Result, error) {
	sortKey := srv.defaultSort
	if strings.TrimSpace(input.Sort) != "" {
		key, ok := directory.ParseSortKey(input.Sort)
		if !ok {
			return nil, domainerrors.ErrValidationFailed.WithDetails("ordenação inválida: " + input.Sort)
		}
		sortKey = key
	}

	state := strings.TrimSpace(input.State)
	if state != "" && !entity.IsBrazilianState(state) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("estado inválido: " + state)
	}

	query := directory.Query{
		Filter: directory.Filter{State: state, City: strings.TrimSpace(input.City)},
		Sort:   sortKey,
	}
	if sortKey == directory.SortProximity {
		coords, err := srv.locator.Locate(ctx, input.Where)
		switch {
		case err == nil:
			query.Origin = &coords
		case errors.Is(err, domainerrors.ErrLocationUnavailable):
			srv.log(ctx).Debug("Proximity sort without location, keeping listing order")
		default:
			return nil, err
		}
	}

	stores, err := srv.storeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	result := directory.List(stores, query)

	return &result, nil
}

// ListPendingStores returns the stores awaiting a decision. Admin only.
func (srv *storeService) ListPendingStores(ctx context.Context, actor usecase.Actor) ([]*entity.Store, error) {
	if !actor.Is(entity.RoleAdmin) {
		return nil, domainerrors.ErrForbidden
	}

	stores, err := srv.storeRepo.FindByStatus(ctx, entity.StoreStatusPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending stores")
	}

	return stores, nil
}

// StoreQR renders the share code of a listed store.
func (srv *storeService) StoreQR(ctx context.Context, storeID uuid.UUID) ([]byte, error) {
	store, err := srv.findStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if !store.IsListed() {
		return nil, domainerrors.ErrStoreNotFound
	}

	png, err := srv.qrcodeSvc.GenerateStoreQR(store.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate store QR code")
	}

	return png, nil
}

func (srv *storeService) findStore(ctx context.Context, storeID uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return store, nil
}
