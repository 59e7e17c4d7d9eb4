package handlers

import (
	"errors"

	"tendertrack/internal/core/services"
	"tendertrack/internal/pkg/response"
	"tendertrack/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// DepartmentHandler handles department endpoints
type DepartmentHandler struct {
	deptService *services.DepartmentService
}

// NewDepartmentHandler creates a new department handler
func NewDepartmentHandler(deptService *services.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{deptService: deptService}
}

// List lists all departments
// @Summary List departments
// @Tags Departments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /departments [get]
func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	departments, err := h.deptService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list departments")
	}
	return response.Success(c, "Departments retrieved successfully", departments)
}

// Get gets a department by ID
// @Summary Get department
// @Tags Departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /departments/{id} [get]
func (h *DepartmentHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid department ID")
	}

	dept, err := h.deptService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrDepartmentNotFound) {
			return response.NotFound(c, "Department not found")
		}
		return response.InternalServerError(c, "Failed to get department")
	}

	return response.Success(c, "Department retrieved successfully", dept)
}

// Create creates a department
// @Summary Create department
// @Tags Departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateDepartmentInput true "Department data"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /departments [post]
func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var input services.CreateDepartmentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if fields := validate.Struct(&input); fields != nil {
		return response.ValidationFailed(c, "Validation failed", fields)
	}

	actorID, _ := c.Locals("userID").(uint)
	dept, err := h.deptService.Create(c.Context(), actorID, &input)
	if err != nil {
		if errors.Is(err, services.ErrDepartmentExists) {
			return response.Conflict(c, "Department name already exists")
		}
		return response.InternalServerError(c, "Failed to create department")
	}

	return response.Created(c, "Department created successfully", dept)
}

// Update updates a department
// @Summary Update department
// @Tags Departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Param body body services.UpdateDepartmentInput true "Department data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /departments/{id} [put]
func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid department ID")
	}

	var input services.UpdateDepartmentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if fields := validate.Struct(&input); fields != nil {
		return response.ValidationFailed(c, "Validation failed", fields)
	}

	actorID, _ := c.Locals("userID").(uint)
	dept, err := h.deptService.Update(c.Context(), actorID, id, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDepartmentNotFound):
			return response.NotFound(c, "Department not found")
		case errors.Is(err, services.ErrDepartmentExists):
			return response.Conflict(c, "Department name already exists")
		default:
			return response.InternalServerError(c, "Failed to update department")
		}
	}

	return response.Success(c, "Department updated successfully", dept)
}
