// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"acai/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated identity performing an operation.
type Actor struct {
	UserID uuid.UUID
	Email  string
	Role   entity.Role // empty for a provisional identity
}

// Is reports whether the actor holds role.
func (a Actor) Is(role entity.Role) bool {
	return a.Role == role
}
