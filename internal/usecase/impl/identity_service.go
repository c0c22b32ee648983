package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "acai/internal/delivery/context"
	"acai/internal/domain/entity"
	domainerrors "acai/internal/domain/errors"
	"acai/internal/domain/navigation"
	"acai/internal/domain/repository"
	"acai/internal/domain/service"
	"acai/internal/errors"
	"acai/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

type identityService struct {
	userRepo repository.UserRepository
	tokenSvc service.TokenService
	validate *validator.Validate
	logger   *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	TokenSvc service.TokenService
	Logger   *slog.Logger
}

// NewIdentityService creates a new mock identity service.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		userRepo: params.UserRepo,
		tokenSvc: params.TokenSvc,
		validate: newValidator(),
		logger:   params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate reuses the user registered under email or creates a provisional identity.
func (srv *identityService) Authenticate(ctx context.Context, email string) (*usecase.AuthOutput, error) {
	email = entity.NormalizeEmail(email)
	if err := srv.validate.Var(email, "required,email"); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("e-mail inválido")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		srv.log(ctx).Info("Existing identity authenticated",
			slog.String("user_id", user.ID.String()),
			slog.String("role", user.Role.String()),
		)
	case errors.Is(err, repository.ErrUserNotFound):
		user, err = srv.createProvisional(ctx, email)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return srv.output(user)
}

func (srv *identityService) createProvisional(ctx context.Context, email string) (*entity.User, error) {
	now := time.Now().UTC()
	user := &entity.User{
		ID:        uuid.New(),
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			// Lost a race with a concurrent login for the same email.
			return srv.userRepo.FindByEmail(ctx, email)
		}

		return nil, errors.Wrap(err, "failed to create provisional user")
	}

	srv.log(ctx).Info("Provisional identity created", slog.String("user_id", user.ID.String()))

	return user, nil
}

// AssignRole finalizes a provisional identity. A role is assigned once, and only
// customer or store may be picked; admins exist only as provisioned users.
func (srv *identityService) AssignRole(ctx context.Context, userID uuid.UUID, role entity.Role) (*usecase.AuthOutput, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("perfil inválido: " + role.String())
	}
	if !role.IsSelectable() {
		srv.log(ctx).Warn("Refused self-assigned role",
			slog.String("user_id", userID.String()),
			slog.String("role", role.String()),
		)

		return nil, domainerrors.ErrForbidden.WithDetails("perfil não selecionável: " + role.String())
	}

	user, err := srv.userRepo.Modify(ctx, userID, func(user *entity.User) error {
		if user.HasRole() {
			return domainerrors.ErrRoleAlreadyAssigned
		}
		user.Role = role
		user.UpdatedAt = time.Now().UTC()

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, domainerrors.ErrUserNotFound
		case errors.Is(err, domainerrors.ErrRoleAlreadyAssigned):
			return nil, domainerrors.ErrRoleAlreadyAssigned
		default:
			return nil, errors.Wrap(err, "failed to update user role")
		}
	}

	srv.log(ctx).Info("Role assigned",
		slog.String("user_id", user.ID.String()),
		slog.String("role", role.String()),
	)

	return srv.output(user)
}

// CurrentView resolves the requested view against the identity's state.
// uuid.Nil stands for an anonymous visitor.
func (srv *identityService) CurrentView(ctx context.Context, input usecase.ViewInput) (navigation.View, error) {
	if input.UserID == uuid.Nil {
		return navigation.Resolve(navigation.StateOf(nil, false), input.Requested), nil
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", domainerrors.ErrUserNotFound
		}

		return "", errors.Wrap(err, "failed to find user by id")
	}

	return navigation.Resolve(navigation.StateOf(user, input.StoreSelected), input.Requested), nil
}

func (srv *identityService) output(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenSvc.GenerateToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.AuthOutput{
		User:               user,
		Token:              token,
		NeedsRoleSelection: !user.HasRole(),
		View:               navigation.Home(navigation.StateOf(user, false)),
	}, nil
}
