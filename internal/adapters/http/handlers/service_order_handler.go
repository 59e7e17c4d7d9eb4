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

// ServiceOrderHandler handles service order endpoints
type ServiceOrderHandler struct {
	orderService *services.ServiceOrderService
}

// NewServiceOrderHandler creates a new service order handler
func NewServiceOrderHandler(orderService *services.ServiceOrderService) *ServiceOrderHandler {
	return &ServiceOrderHandler{orderService: orderService}
}

// List lists service orders
// @Summary List service orders
// @Tags ServiceOrders
// @Produce json
// @Security BearerAuth
// @Param contract_id query int false "Filter by contract"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /service-orders [get]
func (h *ServiceOrderHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	var contractID *uint
	if raw := c.Query("contract_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return response.BadRequest(c, "Invalid contract_id")
		}
		v := uint(id)
		contractID = &v
	}

	orders, total, err := h.orderService.List(c.Context(), contractID, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list service orders")
	}

	return response.Success(c, "Service orders retrieved successfully", pagination.NewResponse(orders, params, total))
}

// Get gets a service order by ID
// @Summary Get service order
// @Tags ServiceOrders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service order ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /service-orders/{id} [get]
func (h *ServiceOrderHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid service order ID")
	}

	order, err := h.orderService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			return response.NotFound(c, "Service order not found")
		}
		return response.InternalServerError(c, "Failed to get service order")
	}

	return response.Success(c, "Service order retrieved successfully", order.ToResponse())
}

// Create creates a service order
// @Summary Create service order
// @Tags ServiceOrders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateOrderInput true "Service order data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /service-orders [post]
func (h *ServiceOrderHandler) Create(c *fiber.Ctx) error {
	var input services.CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if fields := validate.Struct(&input); fields != nil {
		return response.ValidationFailed(c, "Validation failed", fields)
	}

	actorID, _ := c.Locals("userID").(uint)
	order, err := h.orderService.Create(c.Context(), actorID, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrContractNotFound):
			return response.BadRequest(c, "Contract not found")
		case errors.Is(err, services.ErrDepartmentNotFound):
			return response.BadRequest(c, "Department not found")
		case errors.Is(err, services.ErrOrderNumberExists):
			return response.Conflict(c, "Order number already exists")
		default:
			return response.InternalServerError(c, "Failed to create service order")
		}
	}

	return response.Created(c, "Service order created successfully", order.ToResponse())
}

// Update updates a service order
// @Summary Update service order
// @Tags ServiceOrders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service order ID"
// @Param body body services.UpdateOrderInput true "Service order data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /service-orders/{id} [put]
func (h *ServiceOrderHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid service order ID")
	}

	var input services.UpdateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if fields := validate.Struct(&input); fields != nil {
		return response.ValidationFailed(c, "Validation failed", fields)
	}

	actorID, _ := c.Locals("userID").(uint)
	order, err := h.orderService.Update(c.Context(), actorID, id, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			return response.NotFound(c, "Service order not found")
		case errors.Is(err, services.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid status value")
		default:
			return response.InternalServerError(c, "Failed to update service order")
		}
	}

	return response.Success(c, "Service order updated successfully", order.ToResponse())
}
