// Package geo holds the great-circle math shared by every proximity check.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusMeters is the mean Earth radius used for every distance.
const EarthRadiusMeters = 6371000.0

// boundPadding widens bounding boxes so the slightly larger radius used by
// orb never drops points that are inside the haversine radius.
const boundPadding = 1.01

// DistanceMeters returns the haversine distance between two coordinates in meters.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// DistanceKm returns the haversine distance in kilometers.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	return DistanceMeters(lat1, lng1, lat2, lng2) / 1000
}

// Point converts a lat/lng pair to an orb point (lng, lat order).
func Point(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// BoundAround returns a box that contains every point within meters of lat/lng.
func BoundAround(lat, lng, meters float64) orb.Bound {
	return orbgeo.NewBoundAroundPoint(Point(lat, lng), meters*boundPadding)
}

// RoundMeters rounds a distance to whole meters for display.
func RoundMeters(meters float64) int {
	return int(math.Round(meters))
}
