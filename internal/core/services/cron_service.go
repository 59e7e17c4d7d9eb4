package services

import (
	"context"
	"time"

	"tendertrack/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// tokenCleanupSchedule purges expired refresh tokens nightly at 03:00.
const tokenCleanupSchedule = "0 3 * * *"

// CronService runs scheduled maintenance jobs
type CronService struct {
	cron             *cron.Cron
	refreshTokenRepo repositories.RefreshTokenRepository
}

// NewCronService creates a new cron service
func NewCronService(refreshTokenRepo repositories.RefreshTokenRepository) *CronService {
	return &CronService{
		cron:             cron.New(),
		refreshTokenRepo: refreshTokenRepo,
	}
}

// Start registers and launches the scheduled jobs
func (s *CronService) Start() error {
	if _, err := s.cron.AddFunc(tokenCleanupSchedule, s.CleanupExpiredTokens); err != nil {
		return err
	}
	s.cron.Start()
	log.Info("🚀 Cron service started")
	return nil
}

// Stop stops the scheduler; running jobs finish on their own
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Info("🛑 Cron service stopped")
}

// CleanupExpiredTokens deletes refresh tokens past their expiry
func (s *CronService) CleanupExpiredTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.refreshTokenRepo.DeleteExpired(ctx); err != nil {
		log.Errorf("❌ Expired token cleanup failed: %v", err)
		return
	}
	log.Info("✅ Expired refresh tokens purged")
}
