package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"acai/internal/delivery/api/response"
	"acai/internal/domain/entity"
	"acai/internal/domain/pricing"
	"acai/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BowlHandlerParams holds dependencies for BowlHandler, injected by Fx.
type BowlHandlerParams struct {
	fx.In

	BowlUC usecase.BowlUsecase
	Logger *slog.Logger
}

// BowlHandler serves the bowl builder.
type BowlHandler struct {
	bowlUC usecase.BowlUsecase
	logger *slog.Logger
}

// NewBowlHandler is the constructor for BowlHandler
func NewBowlHandler(params BowlHandlerParams) *BowlHandler {
	return &BowlHandler{
		bowlUC: params.BowlUC,
		logger: params.Logger,
	}
}

// QuoteRequest prices a selection. Item ids may repeat.
type QuoteRequest struct {
	StoreID uuid.UUID   `json:"store_id" validate:"required"`
	ItemIDs []uuid.UUID `json:"item_ids"`
}

// StartBowlRequest opens a builder session.
type StartBowlRequest struct {
	StoreID uuid.UUID `json:"store_id" validate:"required"`
}

// AddItemRequest appends an item to the bowl.
type AddItemRequest struct {
	ItemID uuid.UUID `json:"item_id" validate:"required"`
}

// BowlResponse is a bowl with its totals.
type BowlResponse struct {
	ID        uuid.UUID            `json:"id"`
	StoreID   uuid.UUID            `json:"store_id"`
	Items     []entity.CatalogItem `json:"items"`
	Totals    pricing.Totals       `json:"totals"`
	UpdatedAt time.Time            `json:"updated_at"`
}

func newBowlResponse(out *usecase.BowlOutput) *BowlResponse {
	return &BowlResponse{
		ID:        out.Bowl.ID,
		StoreID:   out.Bowl.StoreID,
		Items:     out.Bowl.Items,
		Totals:    out.Totals,
		UpdatedAt: out.Bowl.UpdatedAt,
	}
}

// Quote prices a selection without opening a session.
func (h *BowlHandler) Quote(c echo.Context) error {
	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	totals, err := h.bowlUC.Quote(c.Request().Context(), usecase.QuoteInput{StoreID: req.StoreID, ItemIDs: req.ItemIDs})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, totals)
}

// StartBowl opens an empty bowl for a listed store.
func (h *BowlHandler) StartBowl(c echo.Context) error {
	var req StartBowlRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bowl input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.bowlUC.StartBowl(c.Request().Context(), req.StoreID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newBowlResponse(out))
}

func (h *BowlHandler) GetBowl(c echo.Context) error {
	bowlID, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid bowl ID")
	}

	out, err := h.bowlUC.GetBowl(c.Request().Context(), bowlID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBowlResponse(out))
}

// AddItem appends an item the bowl's store offers.
func (h *BowlHandler) AddItem(c echo.Context) error {
	bowlID, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid bowl ID")
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.bowlUC.AddItem(c.Request().Context(), bowlID, req.ItemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBowlResponse(out))
}

// RemoveItem removes the item at :index. Out-of-range indexes change nothing.
func (h *BowlHandler) RemoveItem(c echo.Context) error {
	bowlID, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid bowl ID")
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INDEX", "Item index must be an integer")
	}

	out, err := h.bowlUC.RemoveItemAt(c.Request().Context(), bowlID, index)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBowlResponse(out))
}

func (h *BowlHandler) DiscardBowl(c echo.Context) error {
	bowlID, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid bowl ID")
	}

	if err := h.bowlUC.DiscardBowl(c.Request().Context(), bowlID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
