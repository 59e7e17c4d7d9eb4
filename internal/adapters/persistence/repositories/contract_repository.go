package repositories

import (
	"context"

	"tendertrack/internal/adapters/persistence/models"
	"tendertrack/internal/core/domain"

	"gorm.io/gorm"
)

// contractRepository implements ContractRepository interface
type contractRepository struct {
	db *gorm.DB
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db: db}
}

// Award creates the contract and moves its tender to awarded atomically.
// Either both rows change or neither does.
func (r *contractRepository) Award(ctx context.Context, contract *models.Contract) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(contract).Error; err != nil {
			return err
		}
		return tx.Model(&models.Tender{}).
			Where("id = ?", contract.TenderID).
			Update("status", string(domain.TenderAwarded)).Error
	})
}

// GetByID gets a contract by ID with relations
func (r *contractRepository) GetByID(ctx context.Context, id uint) (*models.Contract, error) {
	var contract models.Contract
	err := r.db.WithContext(ctx).
		Preload("Tender").
		Preload("CreatedBy").
		First(&contract, id).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// Update updates a contract
func (r *contractRepository) Update(ctx context.Context, contract *models.Contract) error {
	return r.db.WithContext(ctx).Save(contract).Error
}

// List lists contracts with pagination, optionally scoped to one tender
func (r *contractRepository) List(ctx context.Context, tenderID *uint, offset, limit int) ([]*models.Contract, int64, error) {
	var contracts []*models.Contract
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Contract{})
	if tenderID != nil {
		query = query.Where("tender_id = ?", *tenderID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Tender").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&contracts).Error
	if err != nil {
		return nil, 0, err
	}

	return contracts, total, nil
}

// ExistsByContractNumber checks if a contract number exists
func (r *contractRepository) ExistsByContractNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Contract{}).Where("contract_number = ?", number).Count(&count).Error
	return count > 0, err
}

// Count counts all contracts
func (r *contractRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Contract{}).Count(&count).Error
	return count, err
}
