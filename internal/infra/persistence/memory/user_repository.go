package memory

import (
	"context"
	"sync"

	"acai/internal/domain/entity"
	"acai/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]*entity.User
	byEmail map[string]uuid.UUID
}

// NewUserRepository creates an empty user repository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		users:   make(map[uuid.UUID]*entity.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user.Clone(), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[entity.NormalizeEmail(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return r.users[id].Clone(), nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := entity.NormalizeEmail(user.Email)
	if _, ok := r.byEmail[key]; ok {
		return repository.ErrUserAlreadyExists
	}
	r.users[user.ID] = user.Clone()
	r.byEmail[key] = user.ID

	return nil
}

func (r *userRepository) Modify(ctx context.Context, id uuid.UUID, fn func(user *entity.User) error) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	draft := current.Clone()
	if err := fn(draft); err != nil {
		return current.Clone(), err
	}
	draft.ID = id

	if oldKey, newKey := entity.NormalizeEmail(current.Email), entity.NormalizeEmail(draft.Email); oldKey != newKey {
		delete(r.byEmail, oldKey)
		r.byEmail[newKey] = id
	}
	r.users[id] = draft

	return draft.Clone(), nil
}
