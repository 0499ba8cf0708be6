package impl

import (
	"context"
	"time"

	"foodlink/internal/domain/entity"
	domainerrors "foodlink/internal/domain/errors"
	"foodlink/internal/domain/repository"
	"foodlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const recentWindow = 30 * 24 * time.Hour

// estimatedKgPerServing approximates the weight of one prepared serving.
const estimatedKgPerServing = 0.5

type statsService struct {
	donationRepo repository.DonationRepository
	orgRepo      repository.OrganizationRepository
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	DonationRepo repository.DonationRepository
	OrgRepo      repository.OrganizationRepository
}

// NewStatsService creates a new stats service instance
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		donationRepo: params.DonationRepo,
		orgRepo:      params.OrgRepo,
	}
}

// GetPlatformStats aggregates donation and organization counters.
func (s *statsService) GetPlatformStats(ctx context.Context) (*usecase.PlatformStats, error) {
	stats := &usecase.PlatformStats{
		DonationsByStatus: make(map[entity.DonationStatus]int64),
		ItemsByCategory:   make(map[entity.FoodCategory]int64),
	}

	total, err := s.donationRepo.CountAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count donations")
	}
	stats.TotalDonations = total

	byStatus, err := s.donationRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count donations by status")
	}
	stats.DonationsByStatus = byStatus

	totalOrgs, err := s.orgRepo.Count(ctx, repository.OrganizationFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count organizations")
	}
	stats.TotalOrganizations = totalOrgs

	active := true
	activeOrgs, err := s.orgRepo.Count(ctx, repository.OrganizationFilter{Active: &active})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active organizations")
	}
	stats.ActiveOrganizations = activeOrgs

	verified := true
	verifiedOrgs, err := s.orgRepo.Count(ctx, repository.OrganizationFilter{Verified: &verified})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count verified organizations")
	}
	stats.VerifiedOrganizations = verifiedOrgs

	totalItems, err := s.donationRepo.CountFoodItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count food items")
	}
	stats.TotalFoodItems = totalItems

	recent, err := s.donationRepo.FindCreatedSince(ctx, time.Now().Add(-recentWindow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recent donations")
	}
	stats.DonationsLast30Days = int64(len(recent))

	for _, donation := range recent {
		for _, item := range donation.FoodItems {
			stats.ItemsByCategory[item.Category]++
			stats.EstimatedKgRescued += estimateKg(item)
		}
	}

	return stats, nil
}

// GetOrganizationStats aggregates the donations claimed by one organization.
func (s *statsService) GetOrganizationStats(ctx context.Context, orgID uuid.UUID) (*usecase.OrganizationStats, error) {
	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			return nil, domainerrors.ErrOrganizationNotFound
		}

		return nil, errors.Wrap(err, "failed to find organization")
	}

	claimed, err := s.donationRepo.List(ctx, repository.DonationFilter{ClaimedByID: &orgID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list claimed donations")
	}

	stats := &usecase.OrganizationStats{
		OrganizationID:         org.ID,
		TotalDonationsReceived: org.TotalDonationsReceived,
		ClaimsByStatus:         make(map[entity.DonationStatus]int64),
	}
	for _, donation := range claimed {
		stats.ClaimsByStatus[donation.Status]++
		if donation.Status == entity.StatusPickedUp {
			for _, item := range donation.FoodItems {
				stats.EstimatedKgRescued += estimateKg(item)
			}
		}
	}

	return stats, nil
}

// estimateKg converts an item's quantity into an approximate weight. Items
// counted in unknown units contribute nothing rather than guessing.
func estimateKg(item entity.FoodItem) float64 {
	switch item.Unit {
	case "kg":
		return item.Quantity
	case "g":
		return item.Quantity / 1000
	case "servings", "portions", "meals":
		return item.Quantity * estimatedKgPerServing
	default:
		return 0
	}
}
