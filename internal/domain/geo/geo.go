// Package geo provides great-circle distance arithmetic over orb points.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// DistanceKm returns the haversine great-circle distance between two points
// in kilometers. Points are in orb's (lon, lat) order, degrees.
func DistanceKm(a, b orb.Point) float64 {
	lat1Rad := a[1] * math.Pi / 180
	lng1Rad := a[0] * math.Pi / 180
	lat2Rad := b[1] * math.Pi / 180
	lng2Rad := b[0] * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
