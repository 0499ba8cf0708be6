package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"foodlink/internal/domain/entity"
)

func TestDistance_SamePoint(t *testing.T) {
	p := entity.GeoPoint{Latitude: 25.0330, Longitude: 121.5654}
	assert.Zero(t, Distance(p, p))
}

func TestDistance_Symmetric(t *testing.T) {
	a := entity.GeoPoint{Latitude: 25.0330, Longitude: 121.5654}
	b := entity.GeoPoint{Latitude: 24.1477, Longitude: 120.6736}

	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestDistance_KnownPairs(t *testing.T) {
	tests := []struct {
		name    string
		a, b    entity.GeoPoint
		wantKm  float64
		tolerKm float64
	}{
		{
			name:    "taipei to taichung",
			a:       entity.GeoPoint{Latitude: 25.0330, Longitude: 121.5654},
			b:       entity.GeoPoint{Latitude: 24.1477, Longitude: 120.6736},
			wantKm:  133.0,
			tolerKm: 2.0,
		},
		{
			name:    "one degree of latitude",
			a:       entity.GeoPoint{Latitude: 0, Longitude: 0},
			b:       entity.GeoPoint{Latitude: 1, Longitude: 0},
			wantKm:  111.19,
			tolerKm: 0.1,
		},
		{
			name:    "antipodal points",
			a:       entity.GeoPoint{Latitude: 0, Longitude: 0},
			b:       entity.GeoPoint{Latitude: 0, Longitude: 180},
			wantKm:  20015.0,
			tolerKm: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantKm, Distance(tt.a, tt.b), tt.tolerKm)
		})
	}
}
