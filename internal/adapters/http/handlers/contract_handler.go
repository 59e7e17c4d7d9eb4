package handlers

import (
	"errors"
	"strconv"

	"tendertrack/internal/core/services"
	"tendertrack/internal/pkg/pagination"
	"tendertrack/internal/pkg/response"
	"tendertrack/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// ContractHandler handles contract endpoints
type ContractHandler struct {
	contractService *services.ContractService
}

// NewContractHandler creates a new contract handler
func NewContractHandler(contractService *services.ContractService) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

// List lists contracts
// @Summary List contracts
// @Tags Contracts
// @Produce json
// @Security BearerAuth
// @Param tender_id query int false "Filter by tender"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /contracts [get]
func (h *ContractHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	var tenderID *uint
	if raw := c.Query("tender_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return response.BadRequest(c, "Invalid tender_id")
		}
		v := uint(id)
		tenderID = &v
	}

	contracts, total, err := h.contractService.List(c.Context(), tenderID, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list contracts")
	}

	return response.Success(c, "Contracts retrieved successfully", pagination.NewResponse(contracts, params, total))
}

// Get gets a contract by ID
// @Summary Get contract
// @Tags Contracts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contract ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contracts/{id} [get]
func (h *ContractHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid contract ID")
	}

	contract, err := h.contractService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrContractNotFound) {
			return response.NotFound(c, "Contract not found")
		}
		return response.InternalServerError(c, "Failed to get contract")
	}

	return response.Success(c, "Contract retrieved successfully", contract.ToResponse())
}

// Create creates a contract, awarding its tender
// @Summary Create contract
// @Description Create a contract; the referenced tender becomes awarded in the same transaction
// @Tags Contracts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateContractInput true "Contract data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /contracts [post]
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var input services.CreateContractInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if fields := validate.Struct(&input); fields != nil {
		return response.ValidationFailed(c, "Validation failed", fields)
	}

	actorID, _ := c.Locals("userID").(uint)
	contract, err := h.contractService.Create(c.Context(), actorID, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTenderNotFound):
			return response.BadRequest(c, "Tender not found")
		case errors.Is(err, services.ErrContractNumberExists):
			return response.Conflict(c, "Contract number already exists")
		default:
			return response.InternalServerError(c, "Failed to create contract")
		}
	}

	return response.Created(c, "Contract created successfully", contract.ToResponse())
}

// Update updates a contract
// @Summary Update contract
// @Tags Contracts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contract ID"
// @Param body body services.UpdateContractInput true "Contract data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contracts/{id} [put]
func (h *ContractHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid contract ID")
	}

	var input services.UpdateContractInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if fields := validate.Struct(&input); fields != nil {
		return response.ValidationFailed(c, "Validation failed", fields)
	}

	actorID, _ := c.Locals("userID").(uint)
	contract, err := h.contractService.Update(c.Context(), actorID, id, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrContractNotFound):
			return response.NotFound(c, "Contract not found")
		case errors.Is(err, services.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid status value")
		default:
			return response.InternalServerError(c, "Failed to update contract")
		}
	}

	return response.Success(c, "Contract updated successfully", contract.ToResponse())
}
