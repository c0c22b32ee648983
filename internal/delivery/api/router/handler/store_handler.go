package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"acai/internal/delivery/api/middleware"
	"acai/internal/delivery/api/response"
	"acai/internal/domain/entity"
	"acai/internal/domain/service"
	"acai/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NoticeLocationUnavailable marks a directory served without proximity ordering.
const NoticeLocationUnavailable = "location_unavailable"

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
	Logger  *slog.Logger
}

// StoreHandler serves store setup and the public directory.
type StoreHandler struct {
	storeUC usecase.StoreUsecase
	logger  *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC: params.StoreUC,
		logger:  params.Logger,
	}
}

// CreateStoreRequest is the store setup form.
type CreateStoreRequest struct {
	Name         string              `json:"name" validate:"required"`
	CNPJ         string              `json:"cnpj"`
	OwnerName    string              `json:"owner_name"`
	OwnerPhone   string              `json:"owner_phone"`
	Instagram    string              `json:"instagram"`
	State        string              `json:"state" validate:"required,br_state"`
	City         string              `json:"city" validate:"required"`
	Neighborhood string              `json:"neighborhood"`
	Address      string              `json:"address"`
	LogoURL      string              `json:"logo_url"`
	DeliveryType string              `json:"delivery_type" validate:"required,oneof=FREE FIXED DISTANCE"`
	DeliveryFee  float64             `json:"delivery_fee" validate:"gte=0,lte=1000"`
	PricePerKg   float64             `json:"price_per_kg" validate:"gt=0,lte=10000"`
	ComponentIDs []uuid.UUID         `json:"component_ids" validate:"min=1"`
	Location     *entity.Coordinates `json:"location"`
}

// LocationRequest carries the position reported by the device. Missing fields
// mean the device could not provide one.
type LocationRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

func (r *CreateStoreRequest) toInput() usecase.CreateStoreInput {
	return usecase.CreateStoreInput{
		Profile: entity.StoreProfile{
			Name:         r.Name,
			CNPJ:         r.CNPJ,
			OwnerName:    r.OwnerName,
			OwnerPhone:   r.OwnerPhone,
			Instagram:    r.Instagram,
			State:        r.State,
			City:         r.City,
			Neighborhood: r.Neighborhood,
			Address:      r.Address,
			LogoURL:      r.LogoURL,
		},
		DeliveryType: entity.DeliveryType(r.DeliveryType),
		DeliveryFee:  r.DeliveryFee,
		PricePerKg:   r.PricePerKg,
		ComponentIDs: r.ComponentIDs,
		Location:     r.Location,
	}
}

// CreateStore registers the caller's store for approval.
func (h *StoreHandler) CreateStore(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Autenticação necessária")
	}

	var req CreateStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	store, err := h.storeUC.CreateStore(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, store)
}

// SetStoreLocation stores the owner's current position on the store.
func (h *StoreHandler) SetStoreLocation(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Autenticação necessária")
	}

	storeID, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	store, err := h.storeUC.SetStoreLocation(c.Request().Context(), actor, storeID, service.LocateRequest{Lat: req.Lat, Lng: req.Lng})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store)
}

// GetStore returns a listed store, or an unlisted one to its owner and to admins.
func (h *StoreHandler) GetStore(c echo.Context) error {
	storeID, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	store, err := h.storeUC.GetStore(c.Request().Context(), middleware.GetActorRef(c), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store)
}

// ListStores serves the public directory: ?state=&city=&sort=&lat=&lng=
func (h *StoreHandler) ListStores(c echo.Context) error {
	lat, err := optionalFloat(c.QueryParam("lat"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "lat must be a number")
	}
	lng, err := optionalFloat(c.QueryParam("lng"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "lng must be a number")
	}

	result, err := h.storeUC.ListVisibleStores(c.Request().Context(), usecase.ListStoresInput{
		State: c.QueryParam("state"),
		City:  c.QueryParam("city"),
		Sort:  c.QueryParam("sort"),
		Where: service.LocateRequest{Lat: lat, Lng: lng},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if result.LocationUnavailable {
		return response.SuccessWithNotice(c, http.StatusOK, result.Stores, NoticeLocationUnavailable)
	}

	return response.Success(c, http.StatusOK, result.Stores)
}

// StoreQR renders the store's share code as PNG.
func (h *StoreHandler) StoreQR(c echo.Context) error {
	storeID, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	png, err := h.storeUC.StoreQR(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func optionalFloat(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}

	return &v, nil
}
