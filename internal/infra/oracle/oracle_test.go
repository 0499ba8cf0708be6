package oracle

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodlink/internal/domain/entity"
	"foodlink/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateSet() []*entity.MatchCandidate {
	return []*entity.MatchCandidate{
		{
			Organization:  &entity.Organization{ID: uuid.New(), Name: "Harvest Kitchen", Capacity: 300},
			DistanceKm:    1.2,
			PriorityScore: 150,
		},
		{
			Organization:  &entity.Organization{ID: uuid.New(), Name: "City Shelter", Capacity: 120},
			DistanceKm:    4.8,
			PriorityScore: 90,
		},
	}
}

func TestEchoOracle_Rank(t *testing.T) {
	t.Parallel()

	oracle := NewEchoOracle()
	candidates := candidateSet()

	chosen, err := oracle.Rank(context.Background(), &entity.Donation{ID: uuid.New()}, candidates)
	require.NoError(t, err)
	assert.Equal(t, candidates[0].Organization, chosen)
}

func TestEchoOracle_Rank_NoCandidates(t *testing.T) {
	t.Parallel()

	oracle := NewEchoOracle()

	chosen, err := oracle.Rank(context.Background(), &entity.Donation{ID: uuid.New()}, nil)
	require.Error(t, err)
	assert.Nil(t, chosen)
}

func TestHTTPOracle_Rank(t *testing.T) {
	t.Parallel()

	candidates := candidateSet()
	donation := &entity.Donation{
		ID: uuid.New(),
		FoodItems: []entity.FoodItem{
			{Name: "Leftover salad", Quantity: 3, Unit: "kg", Category: entity.CategoryVegetables},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rankRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, donation.ID.String(), req.DonationID)
		assert.Equal(t, []string{"vegetables"}, req.Categories)
		require.Len(t, req.Candidates, 2)
		assert.Equal(t, "Harvest Kitchen", req.Candidates[0].Name)
		assert.Equal(t, 150, req.Candidates[0].PriorityScore)

		// Pick the second candidate to prove the choice is honored.
		_ = json.NewEncoder(w).Encode(rankResponse{
			OrganizationID: req.Candidates[1].OrganizationID,
		})
	}))
	defer server.Close()

	oracle := NewHTTPOracle(server.URL, time.Second, slog.New(slog.DiscardHandler))

	chosen, err := oracle.Rank(context.Background(), donation, candidates)
	require.NoError(t, err)
	assert.Equal(t, candidates[1].Organization, chosen)
}

func TestHTTPOracle_Rank_OutsideCandidateSet(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(rankResponse{OrganizationID: uuid.New().String()})
	}))
	defer server.Close()

	oracle := NewHTTPOracle(server.URL, time.Second, slog.New(slog.DiscardHandler))

	chosen, err := oracle.Rank(context.Background(), &entity.Donation{ID: uuid.New()}, candidateSet())
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrOracleContract)
	assert.Nil(t, chosen)
}

func TestHTTPOracle_Rank_ExplicitNoRecommendation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(rankResponse{OrganizationID: ""})
	}))
	defer server.Close()

	oracle := NewHTTPOracle(server.URL, time.Second, slog.New(slog.DiscardHandler))

	chosen, err := oracle.Rank(context.Background(), &entity.Donation{ID: uuid.New()}, candidateSet())
	require.NoError(t, err)
	assert.Nil(t, chosen)
}

func TestHTTPOracle_Rank_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	oracle := NewHTTPOracle(server.URL, time.Second, slog.New(slog.DiscardHandler))

	_, err := oracle.Rank(context.Background(), &entity.Donation{ID: uuid.New()}, candidateSet())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status: 502")
}

func TestHTTPOracle_Rank_MalformedResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	oracle := NewHTTPOracle(server.URL, time.Second, slog.New(slog.DiscardHandler))

	_, err := oracle.Rank(context.Background(), &entity.Donation{ID: uuid.New()}, candidateSet())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode oracle response")
}

func TestHTTPOracle_Rank_InvalidOrganizationID(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(rankResponse{OrganizationID: "not-a-uuid"})
	}))
	defer server.Close()

	oracle := NewHTTPOracle(server.URL, time.Second, slog.New(slog.DiscardHandler))

	_, err := oracle.Rank(context.Background(), &entity.Donation{ID: uuid.New()}, candidateSet())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid organization ID")
}
