package handlers

import (
	"errors"
	"strconv"

	"tendertrack/internal/adapters/http/middleware"
	"tendertrack/internal/core/domain"
	"tendertrack/internal/core/services"
	"tendertrack/internal/pkg/pagination"
	"tendertrack/internal/pkg/response"
	"tendertrack/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// TenderHandler handles tender endpoints
type TenderHandler struct {
	tenderService *services.TenderService
}

// NewTenderHandler creates a new tender handler
func NewTenderHandler(tenderService *services.TenderService) *TenderHandler {
	return &TenderHandler{tenderService: tenderService}
}

// List lists tenders
// @Summary List tenders
// @Description List tenders with optional status and department filters
// @Tags Tenders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param department_id query int false "Filter by department"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /tenders [get]
func (h *TenderHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	input := &services.ListTendersInput{
		Status: c.Query("status"),
		Offset: params.Offset,
		Limit:  params.Limit,
	}
	if raw := c.Query("department_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return response.BadRequest(c, "Invalid department_id")
		}
		deptID := uint(id)
		input.DepartmentID = &deptID
	}

	tenders, total, err := h.tenderService.List(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownStatus) {
			return response.BadRequest(c, "Unknown tender status")
		}
		return response.InternalServerError(c, "Failed to list tenders")
	}

	return response.Success(c, "Tenders retrieved successfully", pagination.NewResponse(tenders, params, total))
}

// Create creates a tender
// @Summary Create tender
// @Description Create a new tender in draft status
// @Tags Tenders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateTenderInput true "Tender data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /tenders [post]
func (h *TenderHandler) Create(c *fiber.Ctx) error {
	var input services.CreateTenderInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if fields := validate.Struct(&input); fields != nil {
		return response.ValidationFailed(c, "Validation failed", fields)
	}

	actor := middleware.ActorFromContext(c)
	tender, err := h.tenderService.Create(c.Context(), actor, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDepartmentNotFound):
			return response.BadRequest(c, "Department not found")
		case errors.Is(err, services.ErrReferenceExists):
			return response.Conflict(c, "Reference number already exists")
		default:
			return response.InternalServerError(c, "Failed to create tender")
		}
	}

	return response.Created(c, "Tender created successfully", tender.ToResponse())
}

// Get gets a tender by ID
// @Summary Get tender
// @Tags Tenders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tender ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /tenders/{id} [get]
func (h *TenderHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid tender ID")
	}

	tender, err := h.tenderService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrTenderNotFound) {
			return response.NotFound(c, "Tender not found")
		}
		return response.InternalServerError(c, "Failed to get tender")
	}

	return response.Success(c, "Tender retrieved successfully", tender.ToResponse())
}

// Update updates tender metadata
// @Summary Update tender
// @Description Update tender metadata; status changes go through the status endpoint
// @Tags Tenders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tender ID"
// @Param body body services.UpdateTenderInput true "Tender data"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /tenders/{id} [put]
func (h *TenderHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid tender ID")
	}

	var input services.UpdateTenderInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if fields := validate.Struct(&input); fields != nil {
		return response.ValidationFailed(c, "Validation failed", fields)
	}

	actor := middleware.ActorFromContext(c)
	tender, err := h.tenderService.Update(c.Context(), actor, id, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTenderNotFound):
			return response.NotFound(c, "Tender not found")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "You may only update tenders of your own department")
		default:
			return response.InternalServerError(c, "Failed to update tender")
		}
	}

	return response.Success(c, "Tender updated successfully", tender.ToResponse())
}

// ChangeStatus requests a workflow transition
// @Summary Change tender status
// @Description Move a tender along the workflow; legality and eligibility are checked server side
// @Tags Tenders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tender ID"
// @Param body body services.ChangeStatusInput true "Target status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /tenders/{id}/status [post]
func (h *TenderHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid tender ID")
	}

	var input services.ChangeStatusInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if fields := validate.Struct(&input); fields != nil {
		return response.ValidationFailed(c, "Validation failed", fields)
	}

	actor := middleware.ActorFromContext(c)
	tender, err := h.tenderService.ChangeStatus(c.Context(), actor, id, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTenderNotFound):
			return response.NotFound(c, "Tender not found")
		case errors.Is(err, domain.ErrUnknownStatus):
			return response.BadRequest(c, "Unknown tender status")
		case errors.Is(err, domain.ErrIllegalTransition):
			return response.Conflict(c, "Status transition not allowed from current status")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "Your role may not perform this transition")
		default:
			return response.InternalServerError(c, "Failed to change tender status")
		}
	}

	return response.Success(c, "Tender status changed successfully", tender.ToResponse())
}

// Activities returns a tender's activity trail
// @Summary Get tender activities
// @Tags Tenders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tender ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /tenders/{id}/activities [get]
func (h *TenderHandler) Activities(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid tender ID")
	}

	activities, err := h.tenderService.GetActivities(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrTenderNotFound) {
			return response.NotFound(c, "Tender not found")
		}
		return response.InternalServerError(c, "Failed to get tender activities")
	}

	responses := make([]interface{}, 0, len(activities))
	for _, a := range activities {
		responses = append(responses, a.ToResponse())
	}
	return response.Success(c, "Activities retrieved successfully", responses)
}

// parseID parses the :id path parameter
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
