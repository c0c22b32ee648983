// Package memory implements the repositories on process memory. State lives
// for the lifetime of the process, which is the session scope of the marketplace.
package memory

import (
	"context"
	"sync"

	"acai/internal/domain/entity"
	"acai/internal/domain/repository"
	"acai/internal/errors"

	"github.com/google/uuid"
)

type storeRepository struct {
	mu     sync.RWMutex
	order  []uuid.UUID
	stores map[uuid.UUID]*entity.Store
}

// NewStoreRepository creates an empty store repository.
func NewStoreRepository() repository.StoreRepository {
	return &storeRepository{
		stores: make(map[uuid.UUID]*entity.Store),
	}
}

func (r *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.stores[store.ID]; ok {
		return errors.Errorf("store %s already exists", store.ID)
	}
	r.stores[store.ID] = store.Clone()
	r.order = append(r.order, store.ID)

	return nil
}

func (r *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	store, ok := r.stores[id]
	if !ok {
		return nil, repository.ErrStoreNotFound
	}

	return store.Clone(), nil
}

func (r *storeRepository) FindAll(ctx context.Context) ([]*entity.Store, error) {
	return r.find(func(*entity.Store) bool { return true }), nil
}

func (r *storeRepository) FindByStatus(ctx context.Context, status entity.StoreStatus) ([]*entity.Store, error) {
	return r.find(func(s *entity.Store) bool { return s.Status == status }), nil
}

func (r *storeRepository) find(keep func(*entity.Store) bool) []*entity.Store {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Store, 0, len(r.order))
	for _, id := range r.order {
		if s := r.stores[id]; keep(s) {
			out = append(out, s.Clone())
		}
	}

	return out
}

func (r *storeRepository) Modify(ctx context.Context, id uuid.UUID, fn func(store *entity.Store) error) (*entity.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.stores[id]
	if !ok {
		return nil, repository.ErrStoreNotFound
	}

	draft := current.Clone()
	if err := fn(draft); err != nil {
		return current.Clone(), err
	}
	r.stores[id] = draft

	return draft.Clone(), nil
}
