package handler

import (
	"log/slog"
	"net/http"

	"foodlink/internal/delivery/http/response"
	"foodlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StatsHandlerParams holds dependencies for StatsHandler, injected by Fx.
type StatsHandlerParams struct {
	fx.In

	StatsUC usecase.StatsUsecase
	Logger  *slog.Logger
}

// StatsHandler holds dependencies for platform statistics handlers
type StatsHandler struct {
	statsUC usecase.StatsUsecase
	logger  *slog.Logger
}

// NewStatsHandler is the constructor for StatsHandler
func NewStatsHandler(params StatsHandlerParams) *StatsHandler {
	return &StatsHandler{
		statsUC: params.StatsUC,
		logger:  params.Logger,
	}
}

// GetPlatformStats handles retrieving platform-wide donation statistics
func (h *StatsHandler) GetPlatformStats(c echo.Context) error {
	stats, err := h.statsUC.GetPlatformStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// GetOrganizationStats handles retrieving one organization's donation statistics
func (h *StatsHandler) GetOrganizationStats(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid organization ID")
	}

	stats, err := h.statsUC.GetOrganizationStats(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
