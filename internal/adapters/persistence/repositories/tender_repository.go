package repositories

import (
	"context"

	"tendertrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// tenderRepository implements TenderRepository interface
type tenderRepository struct {
	db *gorm.DB
}

// NewTenderRepository creates a new tender repository
func NewTenderRepository(db *gorm.DB) TenderRepository {
	return &tenderRepository{db: db}
}

// Create creates a new tender
func (r *tenderRepository) Create(ctx context.Context, tender *models.Tender) error {
	return r.db.WithContext(ctx).Create(tender).Error
}

// GetByID gets a tender by ID with relations
func (r *tenderRepository) GetByID(ctx context.Context, id uint) (*models.Tender, error) {
	var tender models.Tender
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("CreatedBy").
		First(&tender, id).Error
	if err != nil {
		return nil, err
	}
	return &tender, nil
}

// Update updates a tender
func (r *tenderRepository) Update(ctx context.Context, tender *models.Tender) error {
	return r.db.WithContext(ctx).Save(tender).Error
}

// UpdateStatus updates only the status column of a tender
func (r *tenderRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Tender{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// List lists tenders matching the filter with pagination
func (r *tenderRepository) List(ctx context.Context, filter TenderFilter, offset, limit int) ([]*models.Tender, int64, error) {
	var tenders []*models.Tender
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Tender{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DepartmentID != nil {
		query = query.Where("department_id = ?", *filter.DepartmentID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Department").
		Preload("CreatedBy").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&tenders).Error
	if err != nil {
		return nil, 0, err
	}

	return tenders, total, nil
}

// ExistsByReferenceNumber checks if a reference number exists
func (r *tenderRepository) ExistsByReferenceNumber(ctx context.Context, ref string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Tender{}).Where("reference_number = ?", ref).Count(&count).Error
	return count > 0, err
}

// CountByStatus counts tenders grouped by status
func (r *tenderRepository) CountByStatus(ctx context.Context) ([]TenderStatusCount, error) {
	var rows []TenderStatusCount
	err := r.db.WithContext(ctx).
		Model(&models.Tender{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

// CountByDepartmentStatus counts tenders grouped by department and status
func (r *tenderRepository) CountByDepartmentStatus(ctx context.Context) ([]DepartmentStatusCount, error) {
	var rows []DepartmentStatusCount
	err := r.db.WithContext(ctx).
		Model(&models.Tender{}).
		Select("tenders.department_id, departments.name as department_name, tenders.status, count(*) as count").
		Joins("JOIN departments ON departments.id = tenders.department_id").
		Group("tenders.department_id, departments.name, tenders.status").
		Scan(&rows).Error
	return rows, err
}
