package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"foodlink/internal/domain/entity"
)

func TestBoundAround_ContainsRadius(t *testing.T) {
	center := entity.GeoPoint{Latitude: 25.0330, Longitude: 121.5654}
	bound := BoundAround(center, 10.0)

	assert.True(t, InBound(bound, center))

	// Roughly 5.5 km north of the center, well within a 10 km radius.
	inside := entity.GeoPoint{Latitude: center.Latitude + 0.05, Longitude: center.Longitude}
	assert.True(t, InBound(bound, inside))
}

func TestBoundAround_ExcludesDistantPoints(t *testing.T) {
	center := entity.GeoPoint{Latitude: 25.0330, Longitude: 121.5654}
	bound := BoundAround(center, 10.0)

	// Taichung is over 100 km away.
	outside := entity.GeoPoint{Latitude: 24.1477, Longitude: 120.6736}
	assert.False(t, InBound(bound, outside))
}
