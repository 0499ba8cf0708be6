package impl

import (
	"context"
	"math"
	"sort"

	"foodlink/internal/domain/entity"
	"foodlink/internal/domain/service"
	"foodlink/internal/geo"
	"foodlink/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// distanceScoreBase is the score an organization at the pickup point earns.
	distanceScoreBase = 100.0
	// distanceScorePenaltyPerKm is subtracted for every kilometer of distance.
	distanceScorePenaltyPerKm = 10.0
	// preferenceCreditPerItem is earned per donated item that matches a
	// stated preference. Organizations with no stated preferences accept
	// everything but earn no preference credit.
	preferenceCreditPerItem = 20.0
	// capacityDivisor converts capacity into score points.
	capacityDivisor = 10.0
	// historyDivisor converts the received-donation count into score points.
	historyDivisor = 5.0
)

type matchingService struct {
	oracle service.RankingOracle
}

// MatchingServiceParams holds dependencies for MatchingService, injected by Fx.
type MatchingServiceParams struct {
	fx.In

	Oracle service.RankingOracle
}

// NewMatchingService creates a new matching service instance
func NewMatchingService(params MatchingServiceParams) usecase.MatchingUsecase {
	return &matchingService{
		oracle: params.Oracle,
	}
}

// Locate returns the organizations within maxDistanceKm of the origin, nearest first.
func (s *matchingService) Locate(origin entity.GeoPoint, orgs []*entity.Organization, maxDistanceKm float64) []*entity.MatchCandidate {
	bound := geo.BoundAround(origin, maxDistanceKm)

	candidates := make([]*entity.MatchCandidate, 0, len(orgs))
	for _, org := range orgs {
		if org.Location == nil {
			continue
		}
		if !geo.InBound(bound, *org.Location) {
			continue
		}

		// The raw distance decides inclusion; the stored value is rounded
		// to two decimals for presentation.
		distance := geo.Distance(origin, *org.Location)
		if distance > maxDistanceKm {
			continue
		}

		candidates = append(candidates, &entity.MatchCandidate{
			Organization: org,
			DistanceKm:   math.Round(distance*100) / 100,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DistanceKm < candidates[j].DistanceKm
	})

	return candidates
}

// Match narrows Locate results to organizations whose preferences overlap the
// donation's categories.
func (s *matchingService) Match(donation *entity.Donation, orgs []*entity.Organization, maxDistanceKm float64) []*entity.MatchCandidate {
	categories := donation.Categories()

	located := s.Locate(donation.PickupPoint, orgs, maxDistanceKm)
	matched := make([]*entity.MatchCandidate, 0, len(located))
	for _, candidate := range located {
		if candidate.Organization.AcceptsAny(categories) {
			matched = append(matched, candidate)
		}
	}

	return matched
}

// Prioritize computes a priority score for each candidate and returns them
// highest first. Ties keep their distance order.
func (s *matchingService) Prioritize(donation *entity.Donation, candidates []*entity.MatchCandidate) []*entity.MatchCandidate {
	for _, candidate := range candidates {
		candidate.PriorityScore = scoreCandidate(donation, candidate)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].PriorityScore > candidates[j].PriorityScore
	})

	return candidates
}

// Recommend picks the single best recipient for the donation. The matched
// set is handed to the oracle in locator order, nearest first; no scoring
// happens on this path.
func (s *matchingService) Recommend(ctx context.Context, donation *entity.Donation, orgs []*entity.Organization, maxDistanceKm float64) (*entity.Organization, error) {
	candidates := s.Match(donation, orgs, maxDistanceKm)

	switch len(candidates) {
	case 0:
		return nil, nil
	case 1:
		return candidates[0].Organization, nil
	}

	chosen, err := s.oracle.Rank(ctx, donation, candidates)
	if err != nil {
		return nil, errors.Wrap(err, "oracle ranking failed")
	}
	// A nil answer without an error is the oracle declining to recommend.
	if chosen == nil {
		return nil, nil
	}

	// The oracle must answer from within the candidate set.
	for _, candidate := range candidates {
		if candidate.Organization.ID == chosen.ID {
			return candidate.Organization, nil
		}
	}

	return nil, service.ErrOracleContract
}

// scoreCandidate implements the priority formula: proximity dominates,
// preference overlap rewards per matching item, and capacity and donation
// history act as smaller tiebreakers.
func scoreCandidate(donation *entity.Donation, candidate *entity.MatchCandidate) int {
	org := candidate.Organization

	distanceScore := math.Max(0, distanceScoreBase-candidate.DistanceKm*distanceScorePenaltyPerKm)

	preferenceCredit := 0.0
	for _, item := range donation.FoodItems {
		if org.Accepts(item.Category) {
			preferenceCredit += preferenceCreditPerItem
		}
	}

	total := distanceScore +
		preferenceCredit +
		float64(org.Capacity)/capacityDivisor +
		float64(org.TotalDonationsReceived)/historyDivisor

	return int(math.Round(total))
}
