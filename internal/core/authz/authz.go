package authz

import (
	"tendertrack/internal/core/domain"
)

// Operation names a role-gated action outside the tender status workflow.
type Operation string

const (
	OpDepartmentCreate Operation = "department:create"
	OpDepartmentUpdate Operation = "department:update"

	OpContractCreate Operation = "contract:create"
	OpContractUpdate Operation = "contract:update"

	OpServiceOrderCreate Operation = "service_order:create"
	OpServiceOrderUpdate Operation = "service_order:update"

	OpUserList Operation = "user:list"
)

var grants = map[Operation][]domain.Role{
	OpDepartmentCreate: {domain.RoleSupervisor, domain.RoleMarkets},
	OpDepartmentUpdate: {domain.RoleSupervisor, domain.RoleMarkets},

	OpContractCreate: {domain.RoleMarkets, domain.RoleSupervisor},
	OpContractUpdate: {domain.RoleMarkets, domain.RoleSupervisor},

	OpServiceOrderCreate: {domain.RoleOperational, domain.RoleMarkets, domain.RoleSupervisor},
	OpServiceOrderUpdate: {domain.RoleOperational, domain.RoleMarkets, domain.RoleSupervisor},

	OpUserList: {domain.RoleSupervisor, domain.RoleMarkets},
}

// Allowed reports whether role may perform op. Unknown operations are denied.
func Allowed(role domain.Role, op Operation) bool {
	for _, r := range grants[op] {
		if r == role {
			return true
		}
	}
	return false
}
