package repositories

import (
	"context"

	"tendertrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// activityRepository implements ActivityRepository interface
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Create appends an activity record
func (r *activityRepository) Create(ctx context.Context, activity *models.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// ListRecent lists the most recent activities, newest first
func (r *activityRepository) ListRecent(ctx context.Context, limit int) ([]*models.Activity, error) {
	var activities []*models.Activity
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

// ListByEntity lists the activity trail for one entity, newest first
func (r *activityRepository) ListByEntity(ctx context.Context, entityType string, entityID uint) ([]*models.Activity, error) {
	var activities []*models.Activity
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC, id DESC").
		Find(&activities).Error
	return activities, err
}
