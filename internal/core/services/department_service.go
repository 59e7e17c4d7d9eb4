package services

import (
	"context"
	"errors"

	"tendertrack/internal/adapters/persistence/models"
	"tendertrack/internal/adapters/persistence/repositories"
	"tendertrack/internal/core/domain"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Department service errors
var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentExists   = errors.New("department name already exists")
)

// DepartmentService handles department business logic
type DepartmentService struct {
	deptRepo     repositories.DepartmentRepository
	activityRepo repositories.ActivityRepository
}

// NewDepartmentService creates a new department service
func NewDepartmentService(
	deptRepo repositories.DepartmentRepository,
	activityRepo repositories.ActivityRepository,
) *DepartmentService {
	return &DepartmentService{
		deptRepo:     deptRepo,
		activityRepo: activityRepo,
	}
}

// CreateDepartmentInput represents department creation input
type CreateDepartmentInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

// UpdateDepartmentInput represents department update input
type UpdateDepartmentInput struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description"`
}

// Create creates a new department
func (s *DepartmentService) Create(ctx context.Context, actorID uint, input *CreateDepartmentInput) (*models.Department, error) {
	if _, err := s.deptRepo.GetByName(ctx, input.Name); err == nil {
		return nil, ErrDepartmentExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	dept := &models.Department{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.deptRepo.Create(ctx, dept); err != nil {
		return nil, err
	}

	s.record(ctx, actorID, domain.ActionCreated, dept.ID, "Department "+dept.Name+" created")

	log.Infof("✅ Department created: %s", dept.Name)
	return dept, nil
}

// Update updates a department
func (s *DepartmentService) Update(ctx context.Context, actorID, id uint, input *UpdateDepartmentInput) (*models.Department, error) {
	dept, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}

	if input.Name != nil && *input.Name != dept.Name {
		if _, err := s.deptRepo.GetByName(ctx, *input.Name); err == nil {
			return nil, ErrDepartmentExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		dept.Name = *input.Name
	}
	if input.Description != nil {
		dept.Description = *input.Description
	}

	if err := s.deptRepo.Update(ctx, dept); err != nil {
		return nil, err
	}

	s.record(ctx, actorID, domain.ActionUpdated, dept.ID, "Department "+dept.Name+" updated")

	return dept, nil
}

// GetByID gets a department by ID
func (s *DepartmentService) GetByID(ctx context.Context, id uint) (*models.Department, error) {
	dept, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}
	return dept, nil
}

// List lists all departments
func (s *DepartmentService) List(ctx context.Context) ([]*models.Department, error) {
	return s.deptRepo.List(ctx)
}

func (s *DepartmentService) record(ctx context.Context, actorID uint, action domain.Action, deptID uint, details string) {
	activity := models.NewActivity(actorID, action, domain.EntityDepartment, deptID, details)
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		log.Warnf("failed to record %s activity for department %d: %v", action, deptID, err)
	}
}
