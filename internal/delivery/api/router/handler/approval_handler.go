package handler

import (
	"log/slog"
	"net/http"

	"acai/internal/delivery/api/middleware"
	"acai/internal/delivery/api/response"
	"acai/internal/domain/entity"
	"acai/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ApprovalHandlerParams holds dependencies for ApprovalHandler, injected by Fx.
type ApprovalHandlerParams struct {
	fx.In

	ApprovalUC usecase.ApprovalUsecase
	StoreUC    usecase.StoreUsecase
	Logger     *slog.Logger
}

// ApprovalHandler serves the admin dashboard.
type ApprovalHandler struct {
	approvalUC usecase.ApprovalUsecase
	storeUC    usecase.StoreUsecase
	logger     *slog.Logger
}

// NewApprovalHandler is the constructor for ApprovalHandler
func NewApprovalHandler(params ApprovalHandlerParams) *ApprovalHandler {
	return &ApprovalHandler{
		approvalUC: params.ApprovalUC,
		storeUC:    params.StoreUC,
		logger:     params.Logger,
	}
}

// DecisionRequest is the admin's verdict on a pending store.
type DecisionRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

// DecisionResponse reports the store after the decision.
type DecisionResponse struct {
	Store   *entity.Store      `json:"store"`
	From    entity.StoreStatus `json:"from"`
	To      entity.StoreStatus `json:"to"`
	Changed bool               `json:"changed"`
}

// ListPending returns the stores awaiting a decision.
func (h *ApprovalHandler) ListPending(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Autenticação necessária")
	}

	stores, err := h.storeUC.ListPendingStores(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stores)
}

// Decide approves or rejects a store.
func (h *ApprovalHandler) Decide(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Autenticação necessária")
	}

	storeID, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	var req DecisionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decision input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.approvalUC.ApproveStore(c.Request().Context(), actor, storeID, *req.Approved)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DecisionResponse{
		Store:   out.Store,
		From:    out.Outcome.From,
		To:      out.Outcome.To,
		Changed: out.Outcome.Changed,
	})
}
