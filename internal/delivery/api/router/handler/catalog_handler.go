package handler

import (
	"log/slog"
	"net/http"

	"acai/internal/delivery/api/middleware"
	"acai/internal/delivery/api/response"
	"acai/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the global ingredient catalog.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// AddCatalogItemRequest defines a new ingredient.
type AddCatalogItemRequest struct {
	Name             string  `json:"name" validate:"required"`
	WeightPerServing float64 `json:"weight_per_serving" validate:"gt=0,lte=1000"`
	ImageURL         string  `json:"image_url" validate:"required"`
}

// ListCatalog returns every catalog item.
func (h *CatalogHandler) ListCatalog(c echo.Context) error {
	items, err := h.catalogUC.ListCatalog(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// AddCatalogItem creates an ingredient. Admin only.
func (h *CatalogHandler) AddCatalogItem(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Autenticação necessária")
	}

	var req AddCatalogItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid catalog item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.catalogUC.AddCatalogItem(c.Request().Context(), actor, usecase.AddCatalogItemInput{
		Name:             req.Name,
		WeightPerServing: req.WeightPerServing,
		ImageURL:         req.ImageURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}
