package repositories

import (
	"context"

	"tendertrack/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// DepartmentRepository defines department repository interface
type DepartmentRepository interface {
	Create(ctx context.Context, dept *models.Department) error
	GetByID(ctx context.Context, id uint) (*models.Department, error)
	GetByName(ctx context.Context, name string) (*models.Department, error)
	Update(ctx context.Context, dept *models.Department) error
	List(ctx context.Context) ([]*models.Department, error)
	Count(ctx context.Context) (int64, error)
}

// TenderFilter narrows tender listings
type TenderFilter struct {
	Status       string
	DepartmentID *uint
}

// TenderStatusCount is one row of a status aggregation
type TenderStatusCount struct {
	Status string
	Count  int64
}

// DepartmentStatusCount is one row of a per-department status aggregation
type DepartmentStatusCount struct {
	DepartmentID   uint
	DepartmentName string
	Status         string
	Count          int64
}

// TenderRepository defines tender repository interface
type TenderRepository interface {
	Create(ctx context.Context, tender *models.Tender) error
	GetByID(ctx context.Context, id uint) (*models.Tender, error)
	Update(ctx context.Context, tender *models.Tender) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	List(ctx context.Context, filter TenderFilter, offset, limit int) ([]*models.Tender, int64, error)
	ExistsByReferenceNumber(ctx context.Context, ref string) (bool, error)
	CountByStatus(ctx context.Context) ([]TenderStatusCount, error)
	CountByDepartmentStatus(ctx context.Context) ([]DepartmentStatusCount, error)
}

// ContractRepository defines contract repository interface
type ContractRepository interface {
	// Award creates the contract and moves its tender to awarded in one
	// database transaction.
	Award(ctx context.Context, contract *models.Contract) error
	GetByID(ctx context.Context, id uint) (*models.Contract, error)
	Update(ctx context.Context, contract *models.Contract) error
	List(ctx context.Context, tenderID *uint, offset, limit int) ([]*models.Contract, int64, error)
	ExistsByContractNumber(ctx context.Context, number string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// ServiceOrderRepository defines service order repository interface
type ServiceOrderRepository interface {
	Create(ctx context.Context, order *models.ServiceOrder) error
	GetByID(ctx context.Context, id uint) (*models.ServiceOrder, error)
	Update(ctx context.Context, order *models.ServiceOrder) error
	List(ctx context.Context, contractID *uint, offset, limit int) ([]*models.ServiceOrder, int64, error)
	ExistsByOrderNumber(ctx context.Context, number string) (bool, error)
}

// ActivityRepository defines activity log repository interface
type ActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) error
	ListRecent(ctx context.Context, limit int) ([]*models.Activity, error)
	ListByEntity(ctx context.Context, entityType string, entityID uint) ([]*models.Activity, error)
}
