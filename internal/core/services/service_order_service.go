package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tendertrack/internal/adapters/persistence/models"
	"tendertrack/internal/adapters/persistence/repositories"
	"tendertrack/internal/core/domain"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Service order errors
var (
	ErrOrderNotFound     = errors.New("service order not found")
	ErrOrderNumberExists = errors.New("order number already exists")
)

// ServiceOrderService handles service order business logic
type ServiceOrderService struct {
	orderRepo    repositories.ServiceOrderRepository
	contractRepo repositories.ContractRepository
	deptRepo     repositories.DepartmentRepository
	activityRepo repositories.ActivityRepository
}

// NewServiceOrderService creates a new service order service
func NewServiceOrderService(
	orderRepo repositories.ServiceOrderRepository,
	contractRepo repositories.ContractRepository,
	deptRepo repositories.DepartmentRepository,
	activityRepo repositories.ActivityRepository,
) *ServiceOrderService {
	return &ServiceOrderService{
		orderRepo:    orderRepo,
		contractRepo: contractRepo,
		deptRepo:     deptRepo,
		activityRepo: activityRepo,
	}
}

// CreateOrderInput represents service order creation input
type CreateOrderInput struct {
	OrderNumber    string     `json:"order_number" validate:"required,max=50"`
	ContractID     uint       `json:"contract_id" validate:"required"`
	Description    string     `json:"description"`
	IssuedDate     time.Time  `json:"issued_date" validate:"required"`
	CompletionDate *time.Time `json:"completion_date"`
	DepartmentID   *uint      `json:"department_id"`
}

// UpdateOrderInput represents service order update input
type UpdateOrderInput struct {
	Description    *string    `json:"description"`
	IssuedDate     *time.Time `json:"issued_date"`
	CompletionDate *time.Time `json:"completion_date"`
	Status         *string    `json:"status"`
}

// Create creates a new service order under a contract
func (s *ServiceOrderService) Create(ctx context.Context, actorID uint, input *CreateOrderInput) (*models.ServiceOrder, error) {
	// 1. Validate contract
	if _, err := s.contractRepo.GetByID(ctx, input.ContractID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}

	// 2. Validate department when given
	if input.DepartmentID != nil {
		if _, err := s.deptRepo.GetByID(ctx, *input.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDepartmentNotFound
			}
			return nil, err
		}
	}

	// 3. Check order number uniqueness
	exists, err := s.orderRepo.ExistsByOrderNumber(ctx, input.OrderNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrOrderNumberExists
	}

	// 4. Create
	order := &models.ServiceOrder{
		OrderNumber:    input.OrderNumber,
		ContractID:     input.ContractID,
		Description:    input.Description,
		Status:         string(domain.OrderPending),
		IssuedDate:     input.IssuedDate,
		CompletionDate: input.CompletionDate,
		DepartmentID:   input.DepartmentID,
		CreatedByID:    actorID,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.record(ctx, actorID, domain.ActionCreated, order.ID,
		fmt.Sprintf("Service order %s created", order.OrderNumber))

	log.Infof("✅ Service order created: %s (contract: %d)", order.OrderNumber, order.ContractID)
	return order, nil
}

// Update updates a service order
func (s *ServiceOrderService) Update(ctx context.Context, actorID, id uint, input *UpdateOrderInput) (*models.ServiceOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if input.Description != nil {
		order.Description = *input.Description
	}
	if input.IssuedDate != nil {
		order.IssuedDate = *input.IssuedDate
	}
	if input.CompletionDate != nil {
		order.CompletionDate = input.CompletionDate
	}
	if input.Status != nil {
		if !domain.OrderStatus(*input.Status).Valid() {
			return nil, ErrInvalidStatus
		}
		order.Status = *input.Status
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.record(ctx, actorID, domain.ActionUpdated, order.ID,
		fmt.Sprintf("Service order %s updated", order.OrderNumber))

	return order, nil
}

// GetByID gets a service order by ID
func (s *ServiceOrderService) GetByID(ctx context.Context, id uint) (*models.ServiceOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// List lists service orders with pagination, optionally filtered by contract
func (s *ServiceOrderService) List(ctx context.Context, contractID *uint, offset, limit int) ([]*models.ServiceOrderResponse, int64, error) {
	orders, total, err := s.orderRepo.List(ctx, contractID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, o.ToResponse())
	}
	return responses, total, nil
}

func (s *ServiceOrderService) record(ctx context.Context, actorID uint, action domain.Action, orderID uint, details string) {
	activity := models.NewActivity(actorID, action, domain.EntityServiceOrder, orderID, details)
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		log.Warnf("failed to record %s activity for service order %d: %v", action, orderID, err)
	}
}
