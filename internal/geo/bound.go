package geo

import (
	"foodlink/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// BoundAround returns a bounding box centered on p that fully contains the
// circle of the given radius in kilometers. Used as a cheap prefilter before
// the exact great-circle distance is computed.
func BoundAround(p entity.GeoPoint, radiusKm float64) orb.Bound {
	return orbgeo.NewBoundAroundPoint(orb.Point{p.Longitude, p.Latitude}, radiusKm*1000)
}

// InBound reports whether p falls inside the bound.
func InBound(b orb.Bound, p entity.GeoPoint) bool {
	return b.Contains(orb.Point{p.Longitude, p.Latitude})
}
