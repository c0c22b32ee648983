package entity

import "github.com/paulmach/orb"

// Coordinates is a WGS84 position.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point converts the coordinates to an orb point (lng, lat order).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// IsValid reports whether the coordinates are within WGS84 bounds.
func (c Coordinates) IsValid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
