package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tendertrack/internal/adapters/persistence/models"
	"tendertrack/internal/adapters/persistence/repositories"
	"tendertrack/internal/core/domain"
	"tendertrack/internal/core/workflow"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Tender service errors
var (
	ErrTenderNotFound  = errors.New("tender not found")
	ErrReferenceExists = errors.New("reference number already exists")
)

// TenderService handles tender business logic
type TenderService struct {
	tenderRepo   repositories.TenderRepository
	deptRepo     repositories.DepartmentRepository
	activityRepo repositories.ActivityRepository
}

// NewTenderService creates a new tender service
func NewTenderService(
	tenderRepo repositories.TenderRepository,
	deptRepo repositories.DepartmentRepository,
	activityRepo repositories.ActivityRepository,
) *TenderService {
	return &TenderService{
		tenderRepo:   tenderRepo,
		deptRepo:     deptRepo,
		activityRepo: activityRepo,
	}
}

// CreateTenderInput represents tender creation input
type CreateTenderInput struct {
	ReferenceNumber string     `json:"reference_number" validate:"required,max=50"`
	Title           string     `json:"title" validate:"required,max=200"`
	Description     string     `json:"description"`
	DepartmentID    uint       `json:"department_id" validate:"required"`
	AssignedToID    *uint      `json:"assigned_to_id"`
	PublicationDate *time.Time `json:"publication_date"`
	Deadline        *time.Time `json:"deadline"`
	Budget          *string    `json:"budget" validate:"omitempty,max=100"`
	Documents       []string   `json:"documents"`
}

// UpdateTenderInput represents tender metadata update input.
// Status is deliberately absent; it moves only through ChangeStatus.
type UpdateTenderInput struct {
	Title           *string    `json:"title" validate:"omitempty,max=200"`
	Description     *string    `json:"description"`
	AssignedToID    *uint      `json:"assigned_to_id"`
	PublicationDate *time.Time `json:"publication_date"`
	Deadline        *time.Time `json:"deadline"`
	Budget          *string    `json:"budget" validate:"omitempty,max=100"`
	Documents       []string   `json:"documents"`
}

// ChangeStatusInput represents a status transition request
type ChangeStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// ListTendersInput represents tender listing input
type ListTendersInput struct {
	Status       string
	DepartmentID *uint
	Offset       int
	Limit        int
}

// Create creates a new tender in draft status
func (s *TenderService) Create(ctx context.Context, actor workflow.Actor, input *CreateTenderInput) (*models.Tender, error) {
	// 1. Validate department
	if _, err := s.deptRepo.GetByID(ctx, input.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}

	// 2. Check reference number uniqueness
	exists, err := s.tenderRepo.ExistsByReferenceNumber(ctx, input.ReferenceNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrReferenceExists
	}

	// 3. Create in draft; the requested status, if any, never applies here
	documents := input.Documents
	if documents == nil {
		documents = []string{}
	}
	tender := &models.Tender{
		ReferenceNumber: input.ReferenceNumber,
		Title:           input.Title,
		Description:     input.Description,
		Status:          string(domain.TenderDraft),
		DepartmentID:    input.DepartmentID,
		CreatedByID:     actor.UserID,
		AssignedToID:    input.AssignedToID,
		PublicationDate: input.PublicationDate,
		Deadline:        input.Deadline,
		Budget:          input.Budget,
		Documents:       documents,
	}
	if err := s.tenderRepo.Create(ctx, tender); err != nil {
		return nil, err
	}

	// 4. Record activity
	s.record(ctx, actor.UserID, domain.ActionCreated, tender.ID,
		fmt.Sprintf("Tender %s created", tender.ReferenceNumber))

	log.Infof("✅ Tender created: %s (department: %d)", tender.ReferenceNumber, tender.DepartmentID)
	return tender, nil
}

// Update updates tender metadata. Operational users may only touch tenders
// of their own department; markets, controller and supervisor may touch any.
func (s *TenderService) Update(ctx context.Context, actor workflow.Actor, id uint, input *UpdateTenderInput) (*models.Tender, error) {
	tender, err := s.tenderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenderNotFound
		}
		return nil, err
	}

	if actor.Role == domain.RoleOperational {
		if actor.DepartmentID == nil || *actor.DepartmentID != tender.DepartmentID {
			return nil, domain.ErrForbidden
		}
	}

	if input.Title != nil {
		tender.Title = *input.Title
	}
	if input.Description != nil {
		tender.Description = *input.Description
	}
	if input.AssignedToID != nil {
		tender.AssignedToID = input.AssignedToID
	}
	if input.PublicationDate != nil {
		tender.PublicationDate = input.PublicationDate
	}
	if input.Deadline != nil {
		tender.Deadline = input.Deadline
	}
	if input.Budget != nil {
		tender.Budget = input.Budget
	}
	if input.Documents != nil {
		tender.Documents = input.Documents
	}

	if err := s.tenderRepo.Update(ctx, tender); err != nil {
		return nil, err
	}

	s.record(ctx, actor.UserID, domain.ActionUpdated, tender.ID,
		fmt.Sprintf("Tender %s updated", tender.ReferenceNumber))

	return tender, nil
}

// ChangeStatus requests a workflow transition for a tender. The transition
// table decides legality and who may act; an illegal edge is a conflict, a
// legal edge by the wrong actor is forbidden. On success the matching
// activity is recorded.
func (s *TenderService) ChangeStatus(ctx context.Context, actor workflow.Actor, id uint, input *ChangeStatusInput) (*models.Tender, error) {
	tender, err := s.tenderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenderNotFound
		}
		return nil, err
	}

	target := domain.TenderStatus(input.Status)
	action, err := workflow.Authorize(domain.TenderStatus(tender.Status), target, actor, tender.DepartmentID)
	if err != nil {
		return nil, err
	}

	if err := s.tenderRepo.UpdateStatus(ctx, tender.ID, string(target)); err != nil {
		return nil, err
	}
	tender.Status = string(target)

	s.record(ctx, actor.UserID, action, tender.ID,
		fmt.Sprintf("Tender %s %s", tender.ReferenceNumber, action))

	log.Infof("✅ Tender %s moved to %s by user %d", tender.ReferenceNumber, target, actor.UserID)
	return tender, nil
}

// GetByID gets a tender by ID
func (s *TenderService) GetByID(ctx context.Context, id uint) (*models.Tender, error) {
	tender, err := s.tenderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenderNotFound
		}
		return nil, err
	}
	return tender, nil
}

// List lists tenders matching the filter
func (s *TenderService) List(ctx context.Context, input *ListTendersInput) ([]*models.TenderResponse, int64, error) {
	if input.Status != "" && !domain.TenderStatus(input.Status).Valid() {
		return nil, 0, domain.ErrUnknownStatus
	}

	filter := repositories.TenderFilter{
		Status:       input.Status,
		DepartmentID: input.DepartmentID,
	}
	tenders, total, err := s.tenderRepo.List(ctx, filter, input.Offset, input.Limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.TenderResponse, 0, len(tenders))
	for _, t := range tenders {
		responses = append(responses, t.ToResponse())
	}
	return responses, total, nil
}

// GetActivities returns the activity trail of a tender, newest first
func (s *TenderService) GetActivities(ctx context.Context, id uint) ([]*models.Activity, error) {
	if _, err := s.tenderRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenderNotFound
		}
		return nil, err
	}
	return s.activityRepo.ListByEntity(ctx, string(domain.EntityTender), id)
}

func (s *TenderService) record(ctx context.Context, actorID uint, action domain.Action, tenderID uint, details string) {
	activity := models.NewActivity(actorID, action, domain.EntityTender, tenderID, details)
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		log.Warnf("failed to record %s activity for tender %d: %v", action, tenderID, err)
	}
}
