// Package oracle provides ranking oracle implementations used to pick the
// single recommended recipient among pre-scored candidates.
package oracle

import (
	"log/slog"

	"foodlink/config"
	"foodlink/internal/domain/constants"
	"foodlink/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the RankingOracle, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewRankingOracle creates a RankingOracle based on configuration
func NewRankingOracle(params Params) (service.RankingOracle, error) {
	cfg := params.Config.Oracle
	logger := params.Logger

	// Without configuration, fall back to the deterministic local oracle.
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.OracleProviderEcho {
		logger.Info("Using echo ranking oracle")

		return NewEchoOracle(), nil
	}

	if cfg.Provider == constants.OracleProviderHTTP {
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for http oracle provider")
		}
		logger.Info("Using HTTP ranking oracle",
			slog.String("endpoint", cfg.Endpoint),
		)

		return NewHTTPOracle(cfg.Endpoint, cfg.Timeout, logger), nil
	}

	return nil, errors.Errorf("unknown oracle provider: %s", cfg.Provider)
}

// Module provides the oracle FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRankingOracle),
)
