// Package entity contains the core business objects of the project.
package entity

// MatchCandidate is an Organization snapshot considered against one specific
// donation, annotated with the computed distance and, after prioritization,
// a priority score. Candidates are derived per request and never persisted;
// the annotations are never written back to the Organization entity.
type MatchCandidate struct {
	Organization  *Organization `json:"organization"`
	DistanceKm    float64       `json:"distance_km"`    // Great-circle distance from the donation's pickup point, rounded to 2 decimals.
	PriorityScore int           `json:"priority_score"` // Composite score assigned by the prioritizer; zero until scored.
}
