// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// GeoPoint is an immutable coordinate pair in decimal degrees.
// Values outside [-90,90]/[-180,180] are not rejected here; validating
// coordinates is the responsibility of the boundary that accepts them.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`  // Latitude in decimal degrees.
	Longitude float64 `json:"longitude"` // Longitude in decimal degrees.
}
