package usecase

import (
	"context"

	"acai/internal/domain/entity"
	"acai/internal/domain/navigation"

	"github.com/google/uuid"
)

// AuthOutput is returned by Authenticate and AssignRole.
type AuthOutput struct {
	User               *entity.User
	Token              string
	NeedsRoleSelection bool
	View               navigation.View
}

// ViewInput asks the router where an identity may go.
type ViewInput struct {
	UserID        uuid.UUID
	Requested     navigation.View
	StoreSelected bool
}

// IdentityUsecase is the mock identity flow.
type IdentityUsecase interface {
	// Authenticate looks the email up, creating a provisional identity for unseen emails.
	Authenticate(ctx context.Context, email string) (*AuthOutput, error)

	// AssignRole finalizes a provisional identity.
	AssignRole(ctx context.Context, userID uuid.UUID, role entity.Role) (*AuthOutput, error)

	// CurrentView resolves the view the identity may display.
	CurrentView(ctx context.Context, input ViewInput) (navigation.View, error)
}
