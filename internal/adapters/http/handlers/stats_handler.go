package handlers

import (
	"tendertrack/internal/core/services"
	"tendertrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler handles dashboard statistics endpoints
type StatsHandler struct {
	statsService *services.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Get returns the dashboard aggregate
// @Summary Dashboard statistics
// @Description Tender counts by status and department plus contract totals
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /stats [get]
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	stats, err := h.statsService.Get(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve statistics")
	}

	return response.Success(c, "Statistics retrieved successfully", stats)
}
