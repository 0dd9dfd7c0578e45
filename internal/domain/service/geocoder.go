package service

import (
	"context"

	"medi/internal/errors"
)

// Geocoding lookup failures. The lookup is a single attempt: callers surface
// these immediately and never retry.
var (
	// ErrGeocodeNoMatch is returned when the query resolves to no place.
	ErrGeocodeNoMatch = errors.New("no match for geocoding query")
	// ErrGeocodeUnavailable is returned when the lookup service cannot be
	// reached or answers with a non-success status.
	ErrGeocodeUnavailable = errors.New("geocoding service unavailable")
)

// GeocodeResult is a resolved place.
type GeocodeResult struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}

// Geocoder resolves free-text place names to coordinates and back.
type Geocoder interface {
	// Forward resolves a free-text place name to a coordinate.
	Forward(ctx context.Context, query string) (*GeocodeResult, error)

	// Reverse resolves a coordinate to a place name.
	Reverse(ctx context.Context, latitude, longitude float64) (string, error)
}
