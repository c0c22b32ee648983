package repository

import (
	"context"
	"errors"

	"acai/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBowlNotFound is returned when a bowl session is not found.
var ErrBowlNotFound = errors.New("bowl not found")

// BowlRepository keeps the builder sessions in progress.
type BowlRepository interface {
	Create(ctx context.Context, bowl *entity.Bowl) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Bowl, error)

	// Modify loads the bowl, applies fn and saves the result atomically.
	Modify(ctx context.Context, id uuid.UUID, fn func(bowl *entity.Bowl) error) (*entity.Bowl, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
