// Package geo provides great-circle distance computation on a spherical
// Earth approximation.
package geo

import (
	"math"

	"foodlink/internal/domain/entity"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Distance returns the great-circle distance between two points in
// kilometers using the haversine formula. It is symmetric and zero for
// identical points. Coordinates are taken as-is; out-of-range values
// produce a mathematically defined but meaningless result, and rejecting
// them is the caller's responsibility.
func Distance(a, b entity.GeoPoint) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lng1 := a.Longitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	lng2 := b.Longitude * math.Pi / 180

	deltaLat := lat2 - lat1
	deltaLng := lng2 - lng1

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
