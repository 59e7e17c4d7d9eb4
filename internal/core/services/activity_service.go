package services

import (
	"context"

	"tendertrack/internal/adapters/persistence/models"
	"tendertrack/internal/adapters/persistence/repositories"
	"tendertrack/internal/core/domain"
)

// DefaultRecentLimit caps the recent activity feed when no limit is given.
const DefaultRecentLimit = 10

// MaxRecentLimit caps the recent activity feed regardless of the request.
const MaxRecentLimit = 100

// ActivityService handles activity log reads
type ActivityService struct {
	activityRepo repositories.ActivityRepository
}

// NewActivityService creates a new activity service
func NewActivityService(activityRepo repositories.ActivityRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

// Recent returns the most recent activities across all entities, newest first
func (s *ActivityService) Recent(ctx context.Context, limit int) ([]*models.ActivityResponse, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	activities, err := s.activityRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toResponses(activities), nil
}

// ByEntity returns the activity trail of one entity, newest first
func (s *ActivityService) ByEntity(ctx context.Context, entityType string, entityID uint) ([]*models.ActivityResponse, error) {
	switch domain.EntityType(entityType) {
	case domain.EntityTender, domain.EntityContract, domain.EntityServiceOrder,
		domain.EntityDepartment, domain.EntityUser:
	default:
		return nil, domain.ErrInvalidInput
	}

	activities, err := s.activityRepo.ListByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, err
	}
	return toResponses(activities), nil
}

func toResponses(activities []*models.Activity) []*models.ActivityResponse {
	responses := make([]*models.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		responses = append(responses, a.ToResponse())
	}
	return responses
}
