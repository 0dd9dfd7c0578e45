package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// LocationSource records how a reference location was obtained.
type LocationSource string

const (
	LocationSourceDevice LocationSource = "device" // Device geolocation fix.
	LocationSourceQuery  LocationSource = "query"  // Forward-geocoded free-text query.
)

// ReferenceLocation is the point the directory is ranked against. It is
// session state, never persisted, and cleared whenever obtaining a fresh
// location fails.
type ReferenceLocation struct {
	Latitude    float64        `json:"latitude"`
	Longitude   float64        `json:"longitude"`
	DisplayName string         `json:"display_name,omitempty"` // Resolved place name, when known.
	Source      LocationSource `json:"source"`
	ResolvedAt  time.Time      `json:"resolved_at"`
}

// Point returns the reference coordinate as an orb point (lon, lat order).
func (l *ReferenceLocation) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}
