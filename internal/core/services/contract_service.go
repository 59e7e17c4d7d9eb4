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

// Contract service errors
var (
	ErrContractNotFound     = errors.New("contract not found")
	ErrContractNumberExists = errors.New("contract number already exists")
	ErrInvalidStatus        = errors.New("invalid status value")
)

// ContractService handles contract business logic
type ContractService struct {
	contractRepo repositories.ContractRepository
	tenderRepo   repositories.TenderRepository
	activityRepo repositories.ActivityRepository
}

// NewContractService creates a new contract service
func NewContractService(
	contractRepo repositories.ContractRepository,
	tenderRepo repositories.TenderRepository,
	activityRepo repositories.ActivityRepository,
) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
		tenderRepo:   tenderRepo,
		activityRepo: activityRepo,
	}
}

// CreateContractInput represents contract creation input
type CreateContractInput struct {
	ContractNumber string     `json:"contract_number" validate:"required,max=50"`
	TenderID       uint       `json:"tender_id" validate:"required"`
	Title          string     `json:"title" validate:"required,max=200"`
	SupplierName   string     `json:"supplier_name" validate:"required,max=200"`
	Value          *string    `json:"value" validate:"omitempty,max=100"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Documents      []string   `json:"documents"`
}

// UpdateContractInput represents contract update input
type UpdateContractInput struct {
	Title        *string    `json:"title" validate:"omitempty,max=200"`
	SupplierName *string    `json:"supplier_name" validate:"omitempty,max=200"`
	Value        *string    `json:"value" validate:"omitempty,max=100"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Documents    []string   `json:"documents"`
	Status       *string    `json:"status"`
}

// Create creates a contract and awards its tender. The contract row and the
// tender status change commit together; whatever status the tender held
// before, it is awarded afterwards.
func (s *ContractService) Create(ctx context.Context, actorID uint, input *CreateContractInput) (*models.Contract, error) {
	// 1. Validate tender
	tender, err := s.tenderRepo.GetByID(ctx, input.TenderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenderNotFound
		}
		return nil, err
	}

	// 2. Check contract number uniqueness
	exists, err := s.contractRepo.ExistsByContractNumber(ctx, input.ContractNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrContractNumberExists
	}

	// 3. Create contract and award tender atomically
	documents := input.Documents
	if documents == nil {
		documents = []string{}
	}
	contract := &models.Contract{
		ContractNumber: input.ContractNumber,
		TenderID:       input.TenderID,
		Title:          input.Title,
		SupplierName:   input.SupplierName,
		Value:          input.Value,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		Documents:      documents,
		Status:         string(domain.ContractActive),
		CreatedByID:    actorID,
	}
	if err := s.contractRepo.Award(ctx, contract); err != nil {
		return nil, err
	}

	// 4. Record activities for both entities
	s.record(ctx, actorID, domain.ActionCreated, domain.EntityContract, contract.ID,
		fmt.Sprintf("Contract %s created for tender %s", contract.ContractNumber, tender.ReferenceNumber))
	s.record(ctx, actorID, domain.ActionAwarded, domain.EntityTender, tender.ID,
		fmt.Sprintf("Tender %s awarded to %s", tender.ReferenceNumber, contract.SupplierName))

	log.Infof("✅ Contract %s created, tender %s awarded", contract.ContractNumber, tender.ReferenceNumber)
	return contract, nil
}

// Update updates a contract
func (s *ContractService) Update(ctx context.Context, actorID, id uint, input *UpdateContractInput) (*models.Contract, error) {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}

	if input.Title != nil {
		contract.Title = *input.Title
	}
	if input.SupplierName != nil {
		contract.SupplierName = *input.SupplierName
	}
	if input.Value != nil {
		contract.Value = input.Value
	}
	if input.StartDate != nil {
		contract.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		contract.EndDate = input.EndDate
	}
	if input.Documents != nil {
		contract.Documents = input.Documents
	}
	if input.Status != nil {
		if !domain.ContractStatus(*input.Status).Valid() {
			return nil, ErrInvalidStatus
		}
		contract.Status = *input.Status
	}

	if err := s.contractRepo.Update(ctx, contract); err != nil {
		return nil, err
	}

	s.record(ctx, actorID, domain.ActionUpdated, domain.EntityContract, contract.ID,
		fmt.Sprintf("Contract %s updated", contract.ContractNumber))

	return contract, nil
}

// GetByID gets a contract by ID
func (s *ContractService) GetByID(ctx context.Context, id uint) (*models.Contract, error) {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}
	return contract, nil
}

// List lists contracts with pagination, optionally filtered by tender
func (s *ContractService) List(ctx context.Context, tenderID *uint, offset, limit int) ([]*models.ContractResponse, int64, error) {
	contracts, total, err := s.contractRepo.List(ctx, tenderID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		responses = append(responses, c.ToResponse())
	}
	return responses, total, nil
}

func (s *ContractService) record(ctx context.Context, actorID uint, action domain.Action, entityType domain.EntityType, entityID uint, details string) {
	activity := models.NewActivity(actorID, action, entityType, entityID, details)
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		log.Warnf("failed to record %s activity for %s %d: %v", action, entityType, entityID, err)
	}
}
