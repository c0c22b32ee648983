// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"acai/internal/domain/entity"
	"acai/internal/errors"

	"github.com/google/uuid"
)

// ErrStoreNotFound is returned when a store is not found.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines the operations for store persistence.
// Implementations return copies; changes are saved through Modify.
type StoreRepository interface {
	// Create persists a new store.
	Create(ctx context.Context, store *entity.Store) error

	// FindByID retrieves a store by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindAll returns every store in creation order.
	FindAll(ctx context.Context) ([]*entity.Store, error)

	// FindByStatus returns the stores with the given status in creation order.
	FindByStatus(ctx context.Context, status entity.StoreStatus) ([]*entity.Store, error)

	// Modify loads the store, applies fn and saves the result atomically.
	// When fn returns an error the store is left untouched.
	Modify(ctx context.Context, id uuid.UUID, fn func(store *entity.Store) error) (*entity.Store, error)
}
