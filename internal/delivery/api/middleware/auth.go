package middleware

import (
	"log/slog"
	"strings"

	"acai/internal/delivery/api/response"
	deliverycontext "acai/internal/delivery/context"
	"acai/internal/domain/entity"
	domainerrors "acai/internal/domain/errors"
	"acai/internal/domain/service"
	"acai/internal/usecase"

	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

// AuthMiddleware authenticates bearer tokens and guards routes by role.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate requires a valid bearer token and stores the actor on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok, err := m.actorFromHeader(c)
		if err != nil {
			return response.AppError(c, domainerrors.ErrUnauthorized.WithDetails(err.Error()))
		}
		if !ok {
			return response.AppError(c, domainerrors.ErrUnauthorized)
		}
		setActor(c, actor)

		return next(c)
	}
}

// OptionalAuthenticate sets the actor when a valid token is present and lets
// anonymous requests through. An invalid token is still rejected.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok, err := m.actorFromHeader(c)
		if err != nil {
			return response.AppError(c, domainerrors.ErrUnauthorized.WithDetails(err.Error()))
		}
		if ok {
			setActor(c, actor)
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the actor's role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return response.AppError(c, domainerrors.ErrUnauthorized)
			}
			if actor.Role == "" {
				return response.AppError(c, domainerrors.ErrRoleSelectionRequired)
			}
			if !actor.Is(role) {
				return response.AppError(c, domainerrors.ErrForbidden.WithDetails("requires role "+role.String()))
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) actorFromHeader(c echo.Context) (usecase.Actor, bool, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return usecase.Actor{}, false, nil
	}

	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return usecase.Actor{}, false, errInvalidScheme
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return usecase.Actor{}, false, errInvalidToken
	}

	return usecase.Actor{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}, true, nil
}

func setActor(c echo.Context, actor usecase.Actor) {
	c.Set(actorKey, actor)
	deliverycontext.WithLogAttrs(c, slog.String("actor_id", actor.UserID.String()))
}

// GetActor returns the actor set by Authenticate.
func GetActor(c echo.Context) (usecase.Actor, bool) {
	actor, ok := c.Get(actorKey).(usecase.Actor)

	return actor, ok
}

// GetActorRef is GetActor for use cases that accept an anonymous caller as nil.
func GetActorRef(c echo.Context) *usecase.Actor {
	actor, ok := GetActor(c)
	if !ok {
		return nil
	}

	return &actor
}
