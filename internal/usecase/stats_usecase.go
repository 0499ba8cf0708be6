package usecase

import (
	"context"

	"foodlink/internal/domain/entity"

	"github.com/google/uuid"
)

// PlatformStats summarizes platform-wide donation activity.
type PlatformStats struct {
	TotalDonations        int64                           `json:"total_donations"`
	DonationsByStatus     map[entity.DonationStatus]int64 `json:"donations_by_status"`
	TotalOrganizations    int64                           `json:"total_organizations"`
	ActiveOrganizations   int64                           `json:"active_organizations"`
	VerifiedOrganizations int64                           `json:"verified_organizations"`
	DonationsLast30Days   int64                           `json:"donations_last_30_days"`
	TotalFoodItems        int64                           `json:"total_food_items"`
	ItemsByCategory       map[entity.FoodCategory]int64   `json:"items_by_category"`
	EstimatedKgRescued    float64                         `json:"estimated_kg_rescued"`
}

// OrganizationStats summarizes a single organization's donation activity.
type OrganizationStats struct {
	OrganizationID         uuid.UUID                       `json:"organization_id"`
	TotalDonationsReceived int                             `json:"total_donations_received"`
	ClaimsByStatus         map[entity.DonationStatus]int64 `json:"claims_by_status"`
	EstimatedKgRescued     float64                         `json:"estimated_kg_rescued"`
}

// StatsUsecase defines the platform statistics use cases
type StatsUsecase interface {
	// GetPlatformStats aggregates donation and organization counters.
	GetPlatformStats(ctx context.Context) (*PlatformStats, error)

	// GetOrganizationStats aggregates the donations claimed by one
	// organization.
	GetOrganizationStats(ctx context.Context, orgID uuid.UUID) (*OrganizationStats, error)
}
