package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	points := []orb.Point{
		{0, 0},
		{77.5946, 12.9716},
		{-180, 90},
	}

	for _, p := range points {
		assert.Zero(t, DistanceKm(p, p))
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	bangalore := orb.Point{77.5946, 12.9716}
	chennai := orb.Point{80.2707, 13.0827}

	assert.Equal(t, DistanceKm(bangalore, chennai), DistanceKm(chennai, bangalore))
}

func TestDistanceKm_OneDegreeLatitude(t *testing.T) {
	// One degree of latitude at constant longitude spans ~111 km.
	a := orb.Point{77.0, 12.0}
	b := orb.Point{77.0, 13.0}

	assert.InEpsilon(t, 111.0, DistanceKm(a, b), 0.01)
}

func TestDistanceKm_KnownCityPair(t *testing.T) {
	// Bangalore to Chennai is roughly 290 km as the crow flies.
	bangalore := orb.Point{77.5946, 12.9716}
	chennai := orb.Point{80.2707, 13.0827}

	assert.InDelta(t, 290, DistanceKm(bangalore, chennai), 15)
}
