package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "acai/internal/delivery/context"
	"acai/internal/domain/entity"
	domainerrors "acai/internal/domain/errors"
	"acai/internal/domain/repository"
	"acai/internal/errors"
	"acai/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
	validate    *validator.Validate
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		validate:    newValidator(),
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddCatalogItem validates and stores a new ingredient. Admin only.
func (srv *catalogService) AddCatalogItem(ctx context.Context, actor usecase.Actor, input usecase.AddCatalogItemInput) (*entity.CatalogItem, error) {
	if !actor.Is(entity.RoleAdmin) {
		return nil, domainerrors.ErrForbidden
	}

	input.Name = strings.TrimSpace(input.Name)
	input.ImageURL = strings.TrimSpace(input.ImageURL)
	if err := srv.validate.Struct(input); err != nil {
		return nil, validationFailed(err)
	}

	item := &entity.CatalogItem{
		ID:               uuid.New(),
		Name:             input.Name,
		WeightPerServing: input.WeightPerServing,
		ImageURL:         input.ImageURL,
		CreatedAt:        time.Now().UTC(),
	}
	if err := srv.catalogRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create catalog item")
	}

	srv.log(ctx).Info("Catalog item added",
		slog.String("item_id", item.ID.String()),
		slog.String("name", item.Name),
	)

	return item, nil
}

// ListCatalog returns every catalog item in creation order.
func (srv *catalogService) ListCatalog(ctx context.Context) ([]entity.CatalogItem, error) {
	items, err := srv.catalogRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalog")
	}

	return items, nil
}
