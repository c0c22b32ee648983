package repository

import (
	"context"
	"errors"

	"acai/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCatalogItemNotFound is returned when a catalog item is not found.
var ErrCatalogItemNotFound = errors.New("catalog item not found")

// CatalogRepository stores the global ingredient catalog. Items are never deleted.
type CatalogRepository interface {
	Create(ctx context.Context, item *entity.CatalogItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CatalogItem, error)

	// FindByIDs returns the items in the order of ids, failing with
	// ErrCatalogItemNotFound if any id is unknown.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.CatalogItem, error)

	FindAll(ctx context.Context) ([]entity.CatalogItem, error)
}
