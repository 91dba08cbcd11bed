package geo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_SamePointIsZero(t *testing.T) {
	assert.Equal(t, 0.0, DistanceMeters(12.9716, 77.5946, 12.9716, 77.5946))
	assert.Equal(t, 0.0, DistanceMeters(-33.8688, 151.2093, -33.8688, 151.2093))
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		lat1, lng1 := rng.Float64()*180-90, rng.Float64()*360-180
		lat2, lng2 := rng.Float64()*180-90, rng.Float64()*360-180

		d1 := DistanceMeters(lat1, lng1, lat2, lng2)
		d2 := DistanceMeters(lat2, lng2, lat1, lng1)

		assert.InDelta(t, d1, d2, 1e-6)
		assert.GreaterOrEqual(t, d1, 0.0)
	}
}

func TestDistanceMeters_OneDegreeOfLatitude(t *testing.T) {
	d := DistanceMeters(0, 0, 1, 0)

	assert.InEpsilon(t, 111195.0, d, 0.01)
}

func TestDistanceMeters_KnownPair(t *testing.T) {
	// Two points in Bangalore on the same parallel, about half a kilometer apart.
	d := DistanceMeters(12.9716, 77.5946, 12.9716, 77.5990)

	assert.InDelta(t, 477, d, 5)
	assert.Less(t, d, 500.0)
}

func TestDistanceKm(t *testing.T) {
	assert.InDelta(t, DistanceMeters(0, 0, 1, 0)/1000, DistanceKm(0, 0, 1, 0), 1e-9)
}

func TestBoundAround_ContainsRadius(t *testing.T) {
	lat, lng := 12.9716, 77.5946
	bound := BoundAround(lat, lng, 500)

	assert.True(t, bound.Contains(Point(lat, lng)))
	assert.True(t, bound.Contains(Point(12.9716, 77.5990)))
	assert.True(t, bound.Contains(Point(lat+0.0044, lng)))
	assert.False(t, bound.Contains(Point(lat+0.01, lng)))
}

func TestRoundMeters(t *testing.T) {
	assert.Equal(t, 42, RoundMeters(42.4))
	assert.Equal(t, 43, RoundMeters(42.5))
	assert.Equal(t, 0, RoundMeters(0))
}
