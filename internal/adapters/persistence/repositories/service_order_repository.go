package repositories

import (
	"context"

	"tendertrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// serviceOrderRepository implements ServiceOrderRepository interface
type serviceOrderRepository struct {
	db *gorm.DB
}

// NewServiceOrderRepository creates a new service order repository
func NewServiceOrderRepository(db *gorm.DB) ServiceOrderRepository {
	return &serviceOrderRepository{db: db}
}

// Create creates a new service order
func (r *serviceOrderRepository) Create(ctx context.Context, order *models.ServiceOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// GetByID gets a service order by ID with relations
func (r *serviceOrderRepository) GetByID(ctx context.Context, id uint) (*models.ServiceOrder, error) {
	var order models.ServiceOrder
	err := r.db.WithContext(ctx).
		Preload("Contract").
		Preload("Department").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Update updates a service order
func (r *serviceOrderRepository) Update(ctx context.Context, order *models.ServiceOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// List lists service orders with pagination, optionally scoped to one contract
func (r *serviceOrderRepository) List(ctx context.Context, contractID *uint, offset, limit int) ([]*models.ServiceOrder, int64, error) {
	var orders []*models.ServiceOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&models.ServiceOrder{})
	if contractID != nil {
		query = query.Where("contract_id = ?", *contractID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Contract").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// ExistsByOrderNumber checks if an order number exists
func (r *serviceOrderRepository) ExistsByOrderNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ServiceOrder{}).Where("order_number = ?", number).Count(&count).Error
	return count > 0, err
}
