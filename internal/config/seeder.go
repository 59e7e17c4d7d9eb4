package config

import (
	"tendertrack/internal/adapters/persistence/models"
	"tendertrack/internal/pkg/password"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders. The demo user is development only.
func (s *Seeder) Run() error {
	log.Info("🌱 Running database seeders...")

	if err := s.seedDepartments(); err != nil {
		return err
	}

	if s.cfg.IsDev() {
		if err := s.seedSupervisor(); err != nil {
			log.Warnf("supervisor seeder skipped: %v", err)
		}
	}

	log.Info("✅ Database seeding completed")
	return nil
}

// seedDepartments seeds the baseline departments when none exist
func (s *Seeder) seedDepartments() error {
	var count int64
	if err := s.db.Model(&models.Department{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	departments := []models.Department{
		{Name: "IT", Description: "Information Technology"},
		{Name: "Finance", Description: "Finance and Accounting"},
		{Name: "HR", Description: "Human Resources"},
		{Name: "Operations", Description: "Operations"},
	}
	if err := s.db.Create(&departments).Error; err != nil {
		return err
	}

	log.Infof("✅ Seeded %d departments", len(departments))
	return nil
}

// seedSupervisor seeds a demo supervisor account when no users exist
func (s *Seeder) seedSupervisor() error {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := password.Hash("supervisor123")
	if err != nil {
		return err
	}

	supervisor := &models.User{
		Username: "supervisor",
		Email:    "supervisor@tendertrack.local",
		Password: hashedPassword,
		FullName: "Demo Supervisor",
		Role:     "supervisor",
		IsActive: true,
	}
	if err := s.db.Create(supervisor).Error; err != nil {
		return err
	}

	log.Infof("✅ Demo supervisor created: %s", supervisor.Username)
	return nil
}
