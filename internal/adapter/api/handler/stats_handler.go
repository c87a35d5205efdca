package handler

import (
	"xenopets/internal/usecase"
	"xenopets/pkg/response"

	"github.com/labstack/echo/v4"
)

type StatsHandler struct {
	statsUseCase *usecase.StatsUseCase
}

func NewStatsHandler(statsUseCase *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{
		statsUseCase: statsUseCase,
	}
}

// GetStatistics returns the latest snapshot; the periodic refresher keeps it
// warm, so a missing snapshot only happens before the first tick.
func (h *StatsHandler) GetStatistics(c echo.Context) error {
	snapshot, ok := h.statsUseCase.Snapshot()
	if !ok {
		snapshot = h.statsUseCase.Refresh(c.Request().Context())
	}

	return response.Success(c, snapshot)
}

// RefreshStatistics forces a recomputation, for the dashboard's manual
// refresh button.
func (h *StatsHandler) RefreshStatistics(c echo.Context) error {
	return response.Success(c, h.statsUseCase.Refresh(c.Request().Context()))
}
