package memory

import (
	"context"
	"sync"

	"acai/internal/domain/entity"
	"acai/internal/domain/repository"
	"acai/internal/errors"

	"github.com/google/uuid"
)

type catalogRepository struct {
	mu    sync.RWMutex
	order []uuid.UUID
	items map[uuid.UUID]entity.CatalogItem
}

// NewCatalogRepository creates an empty catalog.
func NewCatalogRepository() repository.CatalogRepository {
	return &catalogRepository{
		items: make(map[uuid.UUID]entity.CatalogItem),
	}
}

func (r *catalogRepository) Create(ctx context.Context, item *entity.CatalogItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return errors.Errorf("catalog item %s already exists", item.ID)
	}
	r.items[item.ID] = *item
	r.order = append(r.order, item.ID)

	return nil
}

func (r *catalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CatalogItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrCatalogItemNotFound
	}

	return &item, nil
}

func (r *catalogRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.CatalogItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.CatalogItem, 0, len(ids))
	for _, id := range ids {
		item, ok := r.items[id]
		if !ok {
			return nil, errors.Wrapf(repository.ErrCatalogItemNotFound, "id %s", id)
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *catalogRepository) FindAll(ctx context.Context) ([]entity.CatalogItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.CatalogItem, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}

	return out, nil
}
