package models

import (
	"time"

	"gorm.io/gorm"

	"tendertrack/internal/core/domain"
)

// ============================================================
// Auth & User Tables
// ============================================================

// User represents users table
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Username     string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email        string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password     string         `gorm:"size:255;not null" json:"-"`
	FullName     string         `gorm:"size:100;not null" json:"full_name"`
	Role         string         `gorm:"size:20;not null;default:'operational'" json:"role"`
	DepartmentID *uint          `gorm:"index" json:"department_id"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Role           string    `json:"role"`
	DepartmentID   *uint     `json:"department_id"`
	DepartmentName string    `json:"department_name,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	resp := &UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FullName:     u.FullName,
		Role:         u.Role,
		DepartmentID: u.DepartmentID,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
	}
	if u.Department != nil {
		resp.DepartmentName = u.Department.Name
	}
	return resp
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Organisation Tables
// ============================================================

// Department represents departments table
type Department struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Department) TableName() string {
	return "departments"
}

// ============================================================
// Procurement Tables
// ============================================================

// Tender represents tenders table (main table)
type Tender struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	ReferenceNumber string         `gorm:"uniqueIndex;size:50;not null" json:"reference_number"`
	Title           string         `gorm:"size:200;not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	Status          string         `gorm:"size:20;not null;default:'draft';index" json:"status"`
	DepartmentID    uint           `gorm:"not null;index" json:"department_id"`
	CreatedByID     uint           `gorm:"not null" json:"created_by_id"`
	AssignedToID    *uint          `gorm:"index" json:"assigned_to_id"`
	PublicationDate *time.Time     `json:"publication_date"`
	Deadline        *time.Time     `json:"deadline"`
	Budget          *string        `gorm:"size:100" json:"budget"`
	Documents       []string       `gorm:"serializer:json" json:"documents"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	CreatedBy  *User       `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	AssignedTo *User       `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
}

func (Tender) TableName() string {
	return "tenders"
}

// TenderResponse DTO
type TenderResponse struct {
	ID              uint       `json:"id"`
	ReferenceNumber string     `json:"reference_number"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	DepartmentID    uint       `json:"department_id"`
	DepartmentName  string     `json:"department_name,omitempty"`
	CreatedByID     uint       `json:"created_by_id"`
	CreatedByName   string     `json:"created_by_name,omitempty"`
	AssignedToID    *uint      `json:"assigned_to_id"`
	PublicationDate *time.Time `json:"publication_date"`
	Deadline        *time.Time `json:"deadline"`
	Budget          *string    `json:"budget"`
	Documents       []string   `json:"documents"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (t *Tender) ToResponse() *TenderResponse {
	resp := &TenderResponse{
		ID:              t.ID,
		ReferenceNumber: t.ReferenceNumber,
		Title:           t.Title,
		Description:     t.Description,
		Status:          t.Status,
		DepartmentID:    t.DepartmentID,
		CreatedByID:     t.CreatedByID,
		AssignedToID:    t.AssignedToID,
		PublicationDate: t.PublicationDate,
		Deadline:        t.Deadline,
		Budget:          t.Budget,
		Documents:       t.Documents,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
	if resp.Documents == nil {
		resp.Documents = []string{}
	}
	if t.Department != nil {
		resp.DepartmentName = t.Department.Name
	}
	if t.CreatedBy != nil {
		resp.CreatedByName = t.CreatedBy.FullName
	}
	return resp
}

// Contract represents contracts table
type Contract struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	ContractNumber string         `gorm:"uniqueIndex;size:50;not null" json:"contract_number"`
	TenderID       uint           `gorm:"not null;index" json:"tender_id"`
	Title          string         `gorm:"size:200;not null" json:"title"`
	SupplierName   string         `gorm:"size:200;not null" json:"supplier_name"`
	Value          *string        `gorm:"size:100" json:"value"`
	StartDate      *time.Time     `json:"start_date"`
	EndDate        *time.Time     `json:"end_date"`
	Documents      []string       `gorm:"serializer:json" json:"documents"`
	Status         string         `gorm:"size:20;not null;default:'active';index" json:"status"`
	CreatedByID    uint           `gorm:"not null" json:"created_by_id"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Tender    *Tender `gorm:"foreignKey:TenderID" json:"tender,omitempty"`
	CreatedBy *User   `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (Contract) TableName() string {
	return "contracts"
}

// ContractResponse DTO
type ContractResponse struct {
	ID             uint       `json:"id"`
	ContractNumber string     `json:"contract_number"`
	TenderID       uint       `json:"tender_id"`
	TenderTitle    string     `json:"tender_title,omitempty"`
	Title          string     `json:"title"`
	SupplierName   string     `json:"supplier_name"`
	Value          *string    `json:"value"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Documents      []string   `json:"documents"`
	Status         string     `json:"status"`
	CreatedByID    uint       `json:"created_by_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (c *Contract) ToResponse() *ContractResponse {
	resp := &ContractResponse{
		ID:             c.ID,
		ContractNumber: c.ContractNumber,
		TenderID:       c.TenderID,
		Title:          c.Title,
		SupplierName:   c.SupplierName,
		Value:          c.Value,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		Documents:      c.Documents,
		Status:         c.Status,
		CreatedByID:    c.CreatedByID,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	if resp.Documents == nil {
		resp.Documents = []string{}
	}
	if c.Tender != nil {
		resp.TenderTitle = c.Tender.Title
	}
	return resp
}

// ServiceOrder represents service_orders table
type ServiceOrder struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	OrderNumber    string         `gorm:"uniqueIndex;size:50;not null" json:"order_number"`
	ContractID     uint           `gorm:"not null;index" json:"contract_id"`
	Description    string         `gorm:"type:text" json:"description"`
	Status         string         `gorm:"size:20;not null;default:'pending';index" json:"status"`
	IssuedDate     time.Time      `gorm:"not null" json:"issued_date"`
	CompletionDate *time.Time     `json:"completion_date"`
	DepartmentID   *uint          `gorm:"index" json:"department_id"`
	CreatedByID    uint           `gorm:"not null" json:"created_by_id"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Contract   *Contract   `gorm:"foreignKey:ContractID" json:"contract,omitempty"`
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	CreatedBy  *User       `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (ServiceOrder) TableName() string {
	return "service_orders"
}

// ServiceOrderResponse DTO
type ServiceOrderResponse struct {
	ID             uint       `json:"id"`
	OrderNumber    string     `json:"order_number"`
	ContractID     uint       `json:"contract_id"`
	ContractNumber string     `json:"contract_number,omitempty"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	IssuedDate     time.Time  `json:"issued_date"`
	CompletionDate *time.Time `json:"completion_date"`
	DepartmentID   *uint      `json:"department_id"`
	CreatedByID    uint       `json:"created_by_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (so *ServiceOrder) ToResponse() *ServiceOrderResponse {
	resp := &ServiceOrderResponse{
		ID:             so.ID,
		OrderNumber:    so.OrderNumber,
		ContractID:     so.ContractID,
		Description:    so.Description,
		Status:         so.Status,
		IssuedDate:     so.IssuedDate,
		CompletionDate: so.CompletionDate,
		DepartmentID:   so.DepartmentID,
		CreatedByID:    so.CreatedByID,
		CreatedAt:      so.CreatedAt,
		UpdatedAt:      so.UpdatedAt,
	}
	if so.Contract != nil {
		resp.ContractNumber = so.Contract.ContractNumber
	}
	return resp
}

// ============================================================
// Activity Log
// ============================================================

// Activity represents activities table (append only)
type Activity struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Action     string    `gorm:"size:50;not null" json:"action"`
	EntityType string    `gorm:"size:30;not null;index:idx_activities_entity" json:"entity_type"`
	EntityID   uint      `gorm:"not null;index:idx_activities_entity" json:"entity_id"`
	Details    string    `gorm:"type:text" json:"details"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Activity) TableName() string {
	return "activities"
}

// ActivityResponse DTO
type ActivityResponse struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	UserName   string    `json:"user_name,omitempty"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   uint      `json:"entity_id"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}

func (a *Activity) ToResponse() *ActivityResponse {
	resp := &ActivityResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		Action:     a.Action,
		EntityType: a.EntityType,
		EntityID:   a.EntityID,
		Details:    a.Details,
		CreatedAt:  a.CreatedAt,
	}
	if a.User != nil {
		resp.UserName = a.User.FullName
	}
	return resp
}

// NewActivity builds an activity record from closed enum values.
func NewActivity(userID uint, action domain.Action, entityType domain.EntityType, entityID uint, details string) *Activity {
	return &Activity{
		UserID:     userID,
		Action:     string(action),
		EntityType: string(entityType),
		EntityID:   entityID,
		Details:    details,
	}
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Department{},
		&User{},
		&RefreshToken{},
		&Tender{},
		&Contract{},
		&ServiceOrder{},
		&Activity{},
	)
}
