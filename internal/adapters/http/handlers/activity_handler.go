package handlers

import (
	"errors"
	"strconv"

	"tendertrack/internal/core/domain"
	"tendertrack/internal/core/services"
	"tendertrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ActivityHandler handles activity log endpoints
type ActivityHandler struct {
	activityService *services.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// Recent returns the most recent activities
// @Summary Recent activities
// @Description List the most recent activities across all entities, newest first
// @Tags Activities
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of entries (default 10)"
// @Success 200 {object} response.Response
// @Router /activities [get]
func (h *ActivityHandler) Recent(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	activities, err := h.activityService.Recent(c.Context(), limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list activities")
	}

	return response.Success(c, "Activities retrieved successfully", activities)
}

// ByEntity returns one entity's activity trail
// @Summary Entity activities
// @Tags Activities
// @Produce json
// @Security BearerAuth
// @Param type path string true "Entity type"
// @Param id path int true "Entity ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /activities/{type}/{id} [get]
func (h *ActivityHandler) ByEntity(c *fiber.Ctx) error {
	entityType := c.Params("type")

	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid entity ID")
	}

	activities, err := h.activityService.ByEntity(c.Context(), entityType, id)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Unknown entity type")
		}
		return response.InternalServerError(c, "Failed to list activities")
	}

	return response.Success(c, "Activities retrieved successfully", activities)
}
