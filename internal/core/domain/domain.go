package domain

// Role represents user role in the system
type Role string

const (
	RoleOperational Role = "operational"
	RoleMarkets     Role = "markets"
	RoleController  Role = "controller"
	RoleSupervisor  Role = "supervisor"
)

// Valid reports whether the role is one of the recognized roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOperational, RoleMarkets, RoleController, RoleSupervisor:
		return true
	}
	return false
}

// TenderStatus represents a tender's position in the procurement workflow
type TenderStatus string

const (
	TenderDraft         TenderStatus = "draft"
	TenderPendingReview TenderStatus = "pending_review"
	TenderReview        TenderStatus = "review"
	TenderApproved      TenderStatus = "approved"
	TenderPublished     TenderStatus = "published"
	TenderAwarded       TenderStatus = "awarded"
	TenderRejected      TenderStatus = "rejected"
)

// Valid reports whether the status is a member of the tender status enum.
func (s TenderStatus) Valid() bool {
	switch s {
	case TenderDraft, TenderPendingReview, TenderReview, TenderApproved,
		TenderPublished, TenderAwarded, TenderRejected:
		return true
	}
	return false
}

// ContractStatus represents a contract's status
type ContractStatus string

const (
	ContractDraft     ContractStatus = "draft"
	ContractActive    ContractStatus = "active"
	ContractCompleted ContractStatus = "completed"
	ContractCancelled ContractStatus = "cancelled"
)

func (s ContractStatus) Valid() bool {
	switch s {
	case ContractDraft, ContractActive, ContractCompleted, ContractCancelled:
		return true
	}
	return false
}

// OrderStatus represents a service order's status
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderInProgress OrderStatus = "in_progress"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderInProgress, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Action tags an activity entry. Closed enumeration so the audit trail
// cannot accumulate typo variants.
type Action string

const (
	ActionCreated            Action = "created"
	ActionUpdated            Action = "updated"
	ActionRegistered         Action = "registered"
	ActionLoggedIn           Action = "logged_in"
	ActionLoggedOut          Action = "logged_out"
	ActionSubmittedForReview Action = "submitted for review"
	ActionApproved           Action = "approved"
	ActionRejected           Action = "rejected"
	ActionPublished          Action = "published"
	ActionAwarded            Action = "awarded"
)

// EntityType tags which kind of entity an activity refers to
type EntityType string

const (
	EntityTender       EntityType = "tender"
	EntityContract     EntityType = "contract"
	EntityServiceOrder EntityType = "service_order"
	EntityDepartment   EntityType = "department"
	EntityUser         EntityType = "user"
)
