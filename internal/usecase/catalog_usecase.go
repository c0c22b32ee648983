package usecase

import (
	"context"

	"acai/internal/domain/entity"
)

// AddCatalogItemInput defines a new ingredient.
type AddCatalogItemInput struct {
	Name             string  `validate:"required"`
	WeightPerServing float64 `validate:"gt=0,lte=1000"` // grams
	ImageURL         string  `validate:"required"`
}

// CatalogUsecase manages the global ingredient catalog.
type CatalogUsecase interface {
	AddCatalogItem(ctx context.Context, actor Actor, input AddCatalogItemInput) (*entity.CatalogItem, error)
	ListCatalog(ctx context.Context) ([]entity.CatalogItem, error)
}
