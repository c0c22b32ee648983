package memory

import (
	"context"
	"sync"

	"acai/internal/domain/entity"
	"acai/internal/domain/repository"
	"acai/internal/errors"

	"github.com/google/uuid"
)

type bowlRepository struct {
	mu    sync.Mutex
	bowls map[uuid.UUID]*entity.Bowl
}

// NewBowlRepository creates an empty set of builder sessions.
func NewBowlRepository() repository.BowlRepository {
	return &bowlRepository{
		bowls: make(map[uuid.UUID]*entity.Bowl),
	}
}

func (r *bowlRepository) Create(ctx context.Context, bowl *entity.Bowl) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bowls[bowl.ID]; ok {
		return errors.Errorf("bowl %s already exists", bowl.ID)
	}
	r.bowls[bowl.ID] = bowl.Clone()

	return nil
}

func (r *bowlRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bowl, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bowl, ok := r.bowls[id]
	if !ok {
		return nil, repository.ErrBowlNotFound
	}

	return bowl.Clone(), nil
}

func (r *bowlRepository) Modify(ctx context.Context, id uuid.UUID, fn func(bowl *entity.Bowl) error) (*entity.Bowl, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.bowls[id]
	if !ok {
		return nil, repository.ErrBowlNotFound
	}

	draft := current.Clone()
	if err := fn(draft); err != nil {
		return current.Clone(), err
	}
	r.bowls[id] = draft

	return draft.Clone(), nil
}

func (r *bowlRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bowls[id]; !ok {
		return repository.ErrBowlNotFound
	}
	delete(r.bowls, id)

	return nil
}
