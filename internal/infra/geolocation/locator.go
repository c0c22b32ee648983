// Package geolocation resolves the customer's position for proximity sorting.
package geolocation

import (
	"context"
	"fmt"
	"log/slog"

	"acai/config"
	"acai/internal/domain/constants"
	"acai/internal/domain/entity"
	domainerrors "acai/internal/domain/errors"
	"acai/internal/domain/service"
	"acai/internal/errors"

	"go.uber.org/fx"
)

// clientLocator trusts the coordinates reported by the device.
type clientLocator struct{}

// NewClientLocator returns a locator backed by client-reported coordinates.
func NewClientLocator() service.Locator {
	return clientLocator{}
}

func (clientLocator) Locate(_ context.Context, req service.LocateRequest) (entity.Coordinates, error) {
	if req.Lat == nil || req.Lng == nil {
		return entity.Coordinates{}, domainerrors.ErrLocationUnavailable
	}

	coords := entity.Coordinates{Lat: *req.Lat, Lng: *req.Lng}
	if !coords.IsValid() {
		return entity.Coordinates{}, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("coordenadas inválidas: %g,%g", coords.Lat, coords.Lng),
		)
	}

	return coords, nil
}

// staticLocator always answers with a configured position.
type staticLocator struct {
	coords entity.Coordinates
}

// NewStaticLocator returns a locator pinned to coords.
func NewStaticLocator(coords entity.Coordinates) (service.Locator, error) {
	if !coords.IsValid() {
		return nil, errors.Errorf("invalid static coordinates %g,%g", coords.Lat, coords.Lng)
	}

	return staticLocator{coords: coords}, nil
}

func (l staticLocator) Locate(context.Context, service.LocateRequest) (entity.Coordinates, error) {
	return l.coords, nil
}

// LocatorParams holds dependencies for the Locator, injected by Fx
type LocatorParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewLocator selects the locator named by geolocation.provider.
func NewLocator(params LocatorParams) (service.Locator, error) {
	cfg := params.Config.Geolocation
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.GeolocationProviderClient {
		params.Logger.Info("Using client geolocation")

		return NewClientLocator(), nil
	}

	switch cfg.Provider {
	case constants.GeolocationProviderStatic:
		params.Logger.Info("Using static geolocation",
			slog.Float64("lat", cfg.Lat),
			slog.Float64("lng", cfg.Lng),
		)

		return NewStaticLocator(entity.Coordinates{Lat: cfg.Lat, Lng: cfg.Lng})
	default:
		return nil, errors.Errorf("unknown geolocation provider: %s", cfg.Provider)
	}
}
