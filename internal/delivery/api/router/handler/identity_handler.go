// Package handler holds the echo handlers of the marketplace API.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"acai/internal/delivery/api/middleware"
	"acai/internal/delivery/api/response"
	"acai/internal/domain/entity"
	"acai/internal/domain/navigation"
	"acai/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IdentityHandlerParams holds dependencies for IdentityHandler, injected by Fx.
type IdentityHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	Logger     *slog.Logger
}

// IdentityHandler serves the mock login, role selection and view routing.
type IdentityHandler struct {
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
}

// NewIdentityHandler is the constructor for IdentityHandler
func NewIdentityHandler(params IdentityHandlerParams) *IdentityHandler {
	return &IdentityHandler{
		identityUC: params.IdentityUC,
		logger:     params.Logger,
	}
}

// LoginRequest represents the request body for the mock login
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AssignRoleRequest represents the request body for role selection
type AssignRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=customer store"`
}

// AuthResponse is returned by login and role selection.
type AuthResponse struct {
	User               *entity.User    `json:"user"`
	Token              string          `json:"token"`
	NeedsRoleSelection bool            `json:"needs_role_selection"`
	View               navigation.View `json:"view"`
}

// ViewResponse is the resolved destination view.
type ViewResponse struct {
	View navigation.View `json:"view"`
}

func newAuthResponse(out *usecase.AuthOutput) *AuthResponse {
	return &AuthResponse{
		User:               out.User,
		Token:              out.Token,
		NeedsRoleSelection: out.NeedsRoleSelection,
		View:               out.View,
	}
}

// Login authenticates by email alone. Unknown emails get a provisional identity.
func (h *IdentityHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.identityUC.Authenticate(c.Request().Context(), req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(out))
}

// AssignRole finalizes the caller's provisional identity and issues a new token.
func (h *IdentityHandler) AssignRole(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Autenticação necessária")
	}

	var req AssignRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.identityUC.AssignRole(c.Request().Context(), actor.UserID, entity.Role(req.Role))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(out))
}

// CurrentView resolves ?view= against the caller's state. Anonymous callers are allowed.
func (h *IdentityHandler) CurrentView(c echo.Context) error {
	input := usecase.ViewInput{Requested: navigation.View(c.QueryParam("view"))}
	if actor, ok := middleware.GetActor(c); ok {
		input.UserID = actor.UserID
	}
	if raw := c.QueryParam("store_selected"); raw != "" {
		selected, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_FAILED", "store_selected must be a boolean")
		}
		input.StoreSelected = selected
	}

	view, err := h.identityUC.CurrentView(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ViewResponse{View: view})
}

func parseID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))

	return id, err == nil
}
