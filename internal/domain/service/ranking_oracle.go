package service

import (
	"context"
	"errors"

	"foodlink/internal/domain/entity"
)

// ErrOracleContract is returned when the ranking oracle answers with an
// organization that was not among the candidates it was asked to rank.
var ErrOracleContract = errors.New("ranking oracle returned an organization outside the candidate set")

// RankingOracle picks the single best recipient among matched candidates.
// Implementations may consult an external model; the caller enforces that the
// answer stays within the candidate set.
type RankingOracle interface {
	// Rank returns the recommended organization for the donation. The
	// candidates slice is non-empty and ordered by distance, nearest first.
	// A (nil, nil) return means the oracle declines to recommend anyone.
	Rank(ctx context.Context, donation *entity.Donation, candidates []*entity.MatchCandidate) (*entity.Organization, error)
}
