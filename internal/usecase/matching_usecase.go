package usecase

import (
	"context"

	"foodlink/internal/domain/entity"
)

// MatchingUsecase defines the donation-to-organization matching pipeline.
// Each stage refines the previous one: Locate filters by distance, Match by
// category preference, Prioritize attaches scores, and Recommend picks one
// recipient.
type MatchingUsecase interface {
	// Locate returns the organizations within maxDistanceKm of the origin,
	// nearest first. Organizations without a known location are skipped.
	Locate(origin entity.GeoPoint, orgs []*entity.Organization, maxDistanceKm float64) []*entity.MatchCandidate

	// Match narrows Locate results to organizations whose food preferences
	// overlap the donation's categories. Organizations with no stated
	// preferences accept everything.
	Match(donation *entity.Donation, orgs []*entity.Organization, maxDistanceKm float64) []*entity.MatchCandidate

	// Prioritize computes a priority score for each candidate and returns
	// them highest first.
	Prioritize(donation *entity.Donation, candidates []*entity.MatchCandidate) []*entity.MatchCandidate

	// Recommend picks the single best recipient for the donation.
	// Returns nil without error when no organization matches.
	Recommend(ctx context.Context, donation *entity.Donation, orgs []*entity.Organization, maxDistanceKm float64) (*entity.Organization, error)
}
