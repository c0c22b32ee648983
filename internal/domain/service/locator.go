package service

import (
	"context"

	"acai/internal/domain/entity"
)

// LocateRequest carries what the client reported about its position.
// Nil fields mean the client could not or would not share a position.
type LocateRequest struct {
	Lat *float64
	Lng *float64
}

// Locator resolves a position for the geolocation capability. It returns
// domain errors.ErrLocationUnavailable when no position can be determined.
type Locator interface {
	Locate(ctx context.Context, req LocateRequest) (entity.Coordinates, error)
}
