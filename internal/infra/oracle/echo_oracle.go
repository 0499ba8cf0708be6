package oracle

import (
	"context"

	"foodlink/internal/domain/entity"
	"foodlink/internal/domain/service"

	"github.com/pkg/errors"
)

// echoOracle is a deterministic local oracle that recommends the nearest
// candidate. Useful for development and as a fallback when no external
// ranking service is configured.
type echoOracle struct{}

// NewEchoOracle creates a new echo oracle instance
func NewEchoOracle() service.RankingOracle {
	return &echoOracle{}
}

// Rank returns the first candidate's organization. Candidates arrive sorted
// by distance, so the first one is the nearest match.
func (o *echoOracle) Rank(_ context.Context, _ *entity.Donation, candidates []*entity.MatchCandidate) (*entity.Organization, error) {
	if len(candidates) == 0 {
		return nil, errors.New("no candidates to rank")
	}

	return candidates[0].Organization, nil
}
