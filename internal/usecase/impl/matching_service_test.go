package impl

import (
	"context"
	"testing"

	"foodlink/internal/domain/entity"
	"foodlink/internal/domain/service"
	mockSvc "foodlink/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testOrigin is the pickup point the tests anchor distances on.
// 0.01 degrees of latitude is roughly 1.11 km.
var testOrigin = entity.GeoPoint{Latitude: 25.0330, Longitude: 121.5654}

func orgAt(name string, latOffset float64, prefs []entity.FoodCategory) *entity.Organization {
	return &entity.Organization{
		ID:   uuid.New(),
		Name: name,
		Location: &entity.GeoPoint{
			Latitude:  testOrigin.Latitude + latOffset,
			Longitude: testOrigin.Longitude,
		},
		FoodPreferences: prefs,
		Active:          true,
	}
}

func vegetableDonation() *entity.Donation {
	return &entity.Donation{
		ID:             uuid.New(),
		RestaurantID:   "rest-1",
		RestaurantName: "Green Kitchen",
		FoodItems: []entity.FoodItem{
			{Name: "Carrots", Quantity: 10, Unit: "kg", Category: entity.CategoryVegetables},
		},
		PickupPoint: testOrigin,
		Status:      entity.StatusAvailable,
	}
}

func TestMatchingService_Locate_FiltersAndSortsByDistance(t *testing.T) {
	matching := NewMatchingService(MatchingServiceParams{Oracle: mockSvc.NewMockRankingOracle(t)})

	near := orgAt("near", 0.02, nil)    // ~2.22 km
	mid := orgAt("mid", 0.05, nil)      // ~5.56 km
	far := orgAt("far", 0.20, nil)      // ~22.2 km, outside the radius
	nowhere := orgAt("nowhere", 0, nil) // no coordinates at all
	nowhere.Location = nil

	candidates := matching.Locate(testOrigin, []*entity.Organization{mid, far, nowhere, near}, 10.0)

	require.Len(t, candidates, 2)
	assert.Equal(t, "near", candidates[0].Organization.Name)
	assert.Equal(t, "mid", candidates[1].Organization.Name)
	assert.InDelta(t, 2.22, candidates[0].DistanceKm, 0.01)
	assert.InDelta(t, 5.56, candidates[1].DistanceKm, 0.01)
}

func TestMatchingService_Locate_ZeroDistanceAtPickupPoint(t *testing.T) {
	matching := NewMatchingService(MatchingServiceParams{Oracle: mockSvc.NewMockRankingOracle(t)})

	org := orgAt("onsite", 0, nil)
	candidates := matching.Locate(testOrigin, []*entity.Organization{org}, 10.0)

	require.Len(t, candidates, 1)
	assert.Equal(t, 0.0, candidates[0].DistanceKm)
}

func TestMatchingService_Match_FiltersByPreferenceOverlap(t *testing.T) {
	matching := NewMatchingService(MatchingServiceParams{Oracle: mockSvc.NewMockRankingOracle(t)})
	donation := vegetableDonation()

	wantsVeg := orgAt("wants-veg", 0.01, []entity.FoodCategory{entity.CategoryVegetables})
	onlyDairy := orgAt("only-dairy", 0.01, []entity.FoodCategory{entity.CategoryDairy})
	takesAll := orgAt("takes-all", 0.02, nil)

	candidates := matching.Match(donation, []*entity.Organization{wantsVeg, onlyDairy, takesAll}, 10.0)

	require.Len(t, candidates, 2)
	assert.Equal(t, "wants-veg", candidates[0].Organization.Name)
	assert.Equal(t, "takes-all", candidates[1].Organization.Name)
}

func TestMatchingService_Prioritize_ScoreFormula(t *testing.T) {
	matching := NewMatchingService(MatchingServiceParams{Oracle: mockSvc.NewMockRankingOracle(t)})
	donation := vegetableDonation()

	// 100 proximity + 20 preference credit + 500/10 capacity + 25/5 history.
	org := orgAt("shelter", 0, []entity.FoodCategory{entity.CategoryVegetables})
	org.Capacity = 500
	org.TotalDonationsReceived = 25

	candidates := matching.Prioritize(donation, []*entity.MatchCandidate{
		{Organization: org, DistanceKm: 0},
	})

	require.Len(t, candidates, 1)
	assert.Equal(t, 175, candidates[0].PriorityScore)
}

func TestMatchingService_Prioritize_NoStatedPreferencesEarnNoCredit(t *testing.T) {
	matching := NewMatchingService(MatchingServiceParams{Oracle: mockSvc.NewMockRankingOracle(t)})
	donation := vegetableDonation()

	// Accepts everything, but earns no per-item preference credit.
	org := orgAt("open-door", 0, nil)

	candidates := matching.Prioritize(donation, []*entity.MatchCandidate{
		{Organization: org, DistanceKm: 0},
	})

	require.Len(t, candidates, 1)
	assert.Equal(t, 100, candidates[0].PriorityScore)
}

func TestMatchingService_Prioritize_DistancePenaltyFloorsAtZero(t *testing.T) {
	matching := NewMatchingService(MatchingServiceParams{Oracle: mockSvc.NewMockRankingOracle(t)})
	donation := vegetableDonation()

	org := orgAt("remote", 0, nil)
	org.Capacity = 100

	candidates := matching.Prioritize(donation, []*entity.MatchCandidate{
		{Organization: org, DistanceKm: 50},
	})

	// Proximity bottoms out at zero instead of going negative.
	require.Len(t, candidates, 1)
	assert.Equal(t, 10, candidates[0].PriorityScore)
}

func TestMatchingService_Prioritize_OrdersHighestFirst(t *testing.T) {
	matching := NewMatchingService(MatchingServiceParams{Oracle: mockSvc.NewMockRankingOracle(t)})
	donation := vegetableDonation()

	weak := orgAt("weak", 0, nil)
	strong := orgAt("strong", 0, []entity.FoodCategory{entity.CategoryVegetables})

	candidates := matching.Prioritize(donation, []*entity.MatchCandidate{
		{Organization: weak, DistanceKm: 5},
		{Organization: strong, DistanceKm: 5},
	})

	require.Len(t, candidates, 2)
	assert.Equal(t, "strong", candidates[0].Organization.Name)
	assert.Greater(t, candidates[0].PriorityScore, candidates[1].PriorityScore)
}

func TestMatchingService_Recommend_NoCandidates(t *testing.T) {
	oracle := mockSvc.NewMockRankingOracle(t)
	matching := NewMatchingService(MatchingServiceParams{Oracle: oracle})

	recommended, err := matching.Recommend(context.Background(), vegetableDonation(), nil, 10.0)
	require.NoError(t, err)
	assert.Nil(t, recommended)
}

func TestMatchingService_Recommend_SingleCandidateSkipsOracle(t *testing.T) {
	oracle := mockSvc.NewMockRankingOracle(t)
	matching := NewMatchingService(MatchingServiceParams{Oracle: oracle})

	org := orgAt("only-option", 0.01, []entity.FoodCategory{entity.CategoryVegetables})

	recommended, err := matching.Recommend(context.Background(), vegetableDonation(), []*entity.Organization{org}, 10.0)
	require.NoError(t, err)
	require.NotNil(t, recommended)
	assert.Equal(t, org.ID, recommended.ID)
}

func TestMatchingService_Recommend_MultipleCandidatesConsultOracle(t *testing.T) {
	oracle := mockSvc.NewMockRankingOracle(t)
	matching := NewMatchingService(MatchingServiceParams{Oracle: oracle})

	first := orgAt("first", 0.01, []entity.FoodCategory{entity.CategoryVegetables})
	second := orgAt("second", 0.03, []entity.FoodCategory{entity.CategoryVegetables})

	ctx := context.Background()
	oracle.EXPECT().
		Rank(ctx, mock.AnythingOfType("*entity.Donation"), mock.AnythingOfType("[]*entity.MatchCandidate")).
		Return(second, nil)

	recommended, err := matching.Recommend(ctx, vegetableDonation(), []*entity.Organization{first, second}, 10.0)
	require.NoError(t, err)
	require.NotNil(t, recommended)
	assert.Equal(t, second.ID, recommended.ID)
}

func TestMatchingService_Recommend_OracleSeesCandidatesNearestFirst(t *testing.T) {
	oracle := mockSvc.NewMockRankingOracle(t)
	matching := NewMatchingService(MatchingServiceParams{Oracle: oracle})

	// The far organization would win any priority ranking: preference
	// overlap, large capacity, long history. A first-pick oracle must still
	// see the plain nearest match first.
	near := orgAt("near", 0.02, nil)
	strong := orgAt("far-strong", 0.05, []entity.FoodCategory{entity.CategoryVegetables})
	strong.Capacity = 500
	strong.TotalDonationsReceived = 100

	ctx := context.Background()
	oracle.EXPECT().
		Rank(ctx, mock.AnythingOfType("*entity.Donation"), mock.AnythingOfType("[]*entity.MatchCandidate")).
		RunAndReturn(func(_ context.Context, _ *entity.Donation, candidates []*entity.MatchCandidate) (*entity.Organization, error) {
			require.Len(t, candidates, 2)
			assert.Equal(t, "near", candidates[0].Organization.Name)
			assert.Equal(t, "far-strong", candidates[1].Organization.Name)
			assert.Zero(t, candidates[0].PriorityScore)
			assert.Zero(t, candidates[1].PriorityScore)

			return candidates[0].Organization, nil
		})

	recommended, err := matching.Recommend(ctx, vegetableDonation(), []*entity.Organization{strong, near}, 10.0)
	require.NoError(t, err)
	require.NotNil(t, recommended)
	assert.Equal(t, near.ID, recommended.ID)
}

func TestMatchingService_Recommend_OracleDeclines(t *testing.T) {
	oracle := mockSvc.NewMockRankingOracle(t)
	matching := NewMatchingService(MatchingServiceParams{Oracle: oracle})

	first := orgAt("first", 0.01, []entity.FoodCategory{entity.CategoryVegetables})
	second := orgAt("second", 0.03, []entity.FoodCategory{entity.CategoryVegetables})

	ctx := context.Background()
	oracle.EXPECT().
		Rank(ctx, mock.AnythingOfType("*entity.Donation"), mock.AnythingOfType("[]*entity.MatchCandidate")).
		Return(nil, nil)

	recommended, err := matching.Recommend(ctx, vegetableDonation(), []*entity.Organization{first, second}, 10.0)
	require.NoError(t, err)
	assert.Nil(t, recommended)
}

func TestMatchingService_Recommend_OracleAnswerOutsideCandidates(t *testing.T) {
	oracle := mockSvc.NewMockRankingOracle(t)
	matching := NewMatchingService(MatchingServiceParams{Oracle: oracle})

	first := orgAt("first", 0.01, []entity.FoodCategory{entity.CategoryVegetables})
	second := orgAt("second", 0.03, []entity.FoodCategory{entity.CategoryVegetables})
	stranger := orgAt("stranger", 0.01, nil)

	ctx := context.Background()
	oracle.EXPECT().
		Rank(ctx, mock.AnythingOfType("*entity.Donation"), mock.AnythingOfType("[]*entity.MatchCandidate")).
		Return(stranger, nil)

	recommended, err := matching.Recommend(ctx, vegetableDonation(), []*entity.Organization{first, second}, 10.0)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrOracleContract)
	assert.Nil(t, recommended)
}

func TestMatchingService_Recommend_OracleFailure(t *testing.T) {
	oracle := mockSvc.NewMockRankingOracle(t)
	matching := NewMatchingService(MatchingServiceParams{Oracle: oracle})

	first := orgAt("first", 0.01, []entity.FoodCategory{entity.CategoryVegetables})
	second := orgAt("second", 0.03, []entity.FoodCategory{entity.CategoryVegetables})

	ctx := context.Background()
	oracle.EXPECT().
		Rank(ctx, mock.AnythingOfType("*entity.Donation"), mock.AnythingOfType("[]*entity.MatchCandidate")).
		Return(nil, errors.New("model endpoint unreachable"))

	recommended, err := matching.Recommend(ctx, vegetableDonation(), []*entity.Organization{first, second}, 10.0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle ranking failed")
	assert.Nil(t, recommended)
}
