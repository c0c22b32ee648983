package repository

import (
	"context"
	"errors"

	"acai/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the email is already taken.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email, compared after entity.NormalizeEmail.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// Modify loads the user, applies fn and saves the result atomically.
	// When fn fails nothing is saved and the error is returned as is.
	Modify(ctx context.Context, id uuid.UUID, fn func(user *entity.User) error) (*entity.User, error)
}
