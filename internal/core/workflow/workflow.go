package workflow

import (
	"tendertrack/internal/core/domain"
)

// Actor carries the identity facts the workflow needs to decide eligibility.
type Actor struct {
	UserID       uint
	Role         domain.Role
	DepartmentID *uint
}

// edge identifies one legal transition in the tender workflow.
type edge struct {
	from domain.TenderStatus
	to   domain.TenderStatus
}

// rule decides whether an actor may take an edge on a tender belonging to
// tenderDept. The only department-sensitive edge is draft -> pending_review;
// all review and publication edges are role-only, so any markets/controller/
// supervisor user may act on tenders from any department.
type rule func(actor Actor, tenderDept uint) bool

func roleIn(roles ...domain.Role) rule {
	allowed := map[domain.Role]bool{}
	for _, r := range roles {
		allowed[r] = true
	}
	return func(actor Actor, _ uint) bool {
		return allowed[actor.Role]
	}
}

func departmentMemberOrSupervisor(actor Actor, tenderDept uint) bool {
	if actor.Role == domain.RoleSupervisor {
		return true
	}
	return actor.DepartmentID != nil && *actor.DepartmentID == tenderDept
}

// transitions is the authoritative legal-edge table. The awarded status is
// absent on purpose: a tender reaches awarded only through contract creation,
// never through a direct status request.
var transitions = map[edge]rule{
	{domain.TenderDraft, domain.TenderPendingReview}: departmentMemberOrSupervisor,

	{domain.TenderPendingReview, domain.TenderApproved}: roleIn(domain.RoleMarkets, domain.RoleController, domain.RoleSupervisor),
	{domain.TenderReview, domain.TenderApproved}:        roleIn(domain.RoleMarkets, domain.RoleController, domain.RoleSupervisor),

	{domain.TenderPendingReview, domain.TenderRejected}: roleIn(domain.RoleMarkets, domain.RoleController, domain.RoleSupervisor),
	{domain.TenderReview, domain.TenderRejected}:        roleIn(domain.RoleMarkets, domain.RoleController, domain.RoleSupervisor),

	{domain.TenderApproved, domain.TenderPublished}: roleIn(domain.RoleMarkets, domain.RoleSupervisor),
}

// actions maps a legal target status to the semantic activity action recorded
// for that transition.
var actions = map[domain.TenderStatus]domain.Action{
	domain.TenderPendingReview: domain.ActionSubmittedForReview,
	domain.TenderApproved:      domain.ActionApproved,
	domain.TenderRejected:      domain.ActionRejected,
	domain.TenderPublished:     domain.ActionPublished,
}

// Authorize checks a requested tender status change against the transition
// table. It returns the activity action to record on success.
//
// Errors: domain.ErrUnknownStatus when target is not a member of the status
// enum, domain.ErrIllegalTransition when no edge exists from current to
// target, domain.ErrForbidden when the edge exists but the actor's role or
// department does not satisfy it.
func Authorize(current, target domain.TenderStatus, actor Actor, tenderDept uint) (domain.Action, error) {
	if !target.Valid() {
		return "", domain.ErrUnknownStatus
	}

	r, ok := transitions[edge{current, target}]
	if !ok {
		return "", domain.ErrIllegalTransition
	}

	if !r(actor, tenderDept) {
		return "", domain.ErrForbidden
	}

	return actions[target], nil
}
