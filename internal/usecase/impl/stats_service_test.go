package impl

import (
	"context"
	"testing"

	"foodlink/internal/domain/entity"
	domainerrors "foodlink/internal/domain/errors"
	"foodlink/internal/domain/repository"
	mockRepo "foodlink/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsService_GetPlatformStats(t *testing.T) {
	donationRepo := mockRepo.NewMockDonationRepository(t)
	orgRepo := mockRepo.NewMockOrganizationRepository(t)
	svc := NewStatsService(StatsServiceParams{DonationRepo: donationRepo, OrgRepo: orgRepo})

	ctx := context.Background()

	donationRepo.EXPECT().CountAll(ctx).Return(int64(42), nil)
	donationRepo.EXPECT().CountByStatus(ctx).Return(map[entity.DonationStatus]int64{
		entity.StatusAvailable: 10,
		entity.StatusClaimed:   5,
		entity.StatusPickedUp:  25,
		entity.StatusExpired:   2,
	}, nil)

	active := true
	verified := true
	orgRepo.EXPECT().Count(ctx, repository.OrganizationFilter{}).Return(int64(12), nil)
	orgRepo.EXPECT().Count(ctx, repository.OrganizationFilter{Active: &active}).Return(int64(9), nil)
	orgRepo.EXPECT().Count(ctx, repository.OrganizationFilter{Verified: &verified}).Return(int64(7), nil)

	donationRepo.EXPECT().CountFoodItems(ctx).Return(int64(120), nil)

	recent := []*entity.Donation{
		{
			FoodItems: []entity.FoodItem{
				{Name: "Carrots", Quantity: 10, Unit: "kg", Category: entity.CategoryVegetables},
				{Name: "Rolls", Quantity: 2000, Unit: "g", Category: entity.CategoryBakery},
			},
		},
		{
			FoodItems: []entity.FoodItem{
				{Name: "Curry", Quantity: 8, Unit: "servings", Category: entity.CategoryCookedFood},
				{Name: "Juice", Quantity: 6, Unit: "bottles", Category: entity.CategoryBeverages},
			},
		},
	}
	donationRepo.EXPECT().
		FindCreatedSince(ctx, mock.AnythingOfType("time.Time")).
		Return(recent, nil)

	stats, err := svc.GetPlatformStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(42), stats.TotalDonations)
	assert.Equal(t, int64(5), stats.DonationsByStatus[entity.StatusClaimed])
	assert.Equal(t, int64(12), stats.TotalOrganizations)
	assert.Equal(t, int64(9), stats.ActiveOrganizations)
	assert.Equal(t, int64(7), stats.VerifiedOrganizations)
	assert.Equal(t, int64(120), stats.TotalFoodItems)
	assert.Equal(t, int64(2), stats.DonationsLast30Days)

	assert.Equal(t, int64(1), stats.ItemsByCategory[entity.CategoryVegetables])
	assert.Equal(t, int64(1), stats.ItemsByCategory[entity.CategoryBeverages])

	// 10 kg of carrots, 2 kg of rolls, 4 kg of curry; bottles are unknown
	// units and count for nothing.
	assert.InDelta(t, 16.0, stats.EstimatedKgRescued, 0.001)
}

func TestStatsService_GetPlatformStats_CountFailure(t *testing.T) {
	donationRepo := mockRepo.NewMockDonationRepository(t)
	orgRepo := mockRepo.NewMockOrganizationRepository(t)
	svc := NewStatsService(StatsServiceParams{DonationRepo: donationRepo, OrgRepo: orgRepo})

	ctx := context.Background()

	donationRepo.EXPECT().CountAll(ctx).Return(int64(0), errors.New("connection refused"))

	stats, err := svc.GetPlatformStats(ctx)
	require.Error(t, err)
	assert.Nil(t, stats)
	assert.Contains(t, err.Error(), "failed to count donations")
}

func TestStatsService_GetOrganizationStats(t *testing.T) {
	donationRepo := mockRepo.NewMockDonationRepository(t)
	orgRepo := mockRepo.NewMockOrganizationRepository(t)
	svc := NewStatsService(StatsServiceParams{DonationRepo: donationRepo, OrgRepo: orgRepo})

	ctx := context.Background()
	orgID := uuid.New()

	orgRepo.EXPECT().FindByID(ctx, orgID).Return(&entity.Organization{
		ID:                     orgID,
		Name:                   "Harvest Kitchen",
		TotalDonationsReceived: 8,
	}, nil)

	claimed := []*entity.Donation{
		{
			Status: entity.StatusPickedUp,
			FoodItems: []entity.FoodItem{
				{Name: "Carrots", Quantity: 5, Unit: "kg", Category: entity.CategoryVegetables},
			},
		},
		{
			Status: entity.StatusPickedUp,
			FoodItems: []entity.FoodItem{
				{Name: "Stew", Quantity: 4, Unit: "servings", Category: entity.CategoryCookedFood},
			},
		},
		{
			// Claimed but not collected yet: counted by status, no kg credit.
			Status: entity.StatusClaimed,
			FoodItems: []entity.FoodItem{
				{Name: "Bread", Quantity: 3, Unit: "kg", Category: entity.CategoryBakery},
			},
		},
	}
	donationRepo.EXPECT().
		List(ctx, repository.DonationFilter{ClaimedByID: &orgID}).
		Return(claimed, nil)

	stats, err := svc.GetOrganizationStats(ctx, orgID)
	require.NoError(t, err)
	assert.Equal(t, orgID, stats.OrganizationID)
	assert.Equal(t, 8, stats.TotalDonationsReceived)
	assert.Equal(t, int64(2), stats.ClaimsByStatus[entity.StatusPickedUp])
	assert.Equal(t, int64(1), stats.ClaimsByStatus[entity.StatusClaimed])
	assert.InDelta(t, 7.0, stats.EstimatedKgRescued, 0.001)
}

func TestStatsService_GetOrganizationStats_UnknownOrganization(t *testing.T) {
	donationRepo := mockRepo.NewMockDonationRepository(t)
	orgRepo := mockRepo.NewMockOrganizationRepository(t)
	svc := NewStatsService(StatsServiceParams{DonationRepo: donationRepo, OrgRepo: orgRepo})

	ctx := context.Background()
	orgID := uuid.New()

	orgRepo.EXPECT().FindByID(ctx, orgID).Return(nil, repository.ErrOrganizationNotFound)

	stats, err := svc.GetOrganizationStats(ctx, orgID)
	require.Error(t, err)
	assert.Nil(t, stats)
	assert.ErrorIs(t, err, domainerrors.ErrOrganizationNotFound)
}
