package workflow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tendertrack/internal/core/domain"
)

func uintPtr(v uint) *uint { return &v }

func TestAuthorizeLegalEdges(t *testing.T) {
	tests := []struct {
		name       string
		current    domain.TenderStatus
		target     domain.TenderStatus
		actor      Actor
		dept       uint
		wantAction domain.Action
	}{
		{
			name:       "department member submits draft",
			current:    domain.TenderDraft,
			target:     domain.TenderPendingReview,
			actor:      Actor{Role: domain.RoleOperational, DepartmentID: uintPtr(3)},
			dept:       3,
			wantAction: domain.ActionSubmittedForReview,
		},
		{
			name:       "supervisor submits draft from another department",
			current:    domain.TenderDraft,
			target:     domain.TenderPendingReview,
			actor:      Actor{Role: domain.RoleSupervisor, DepartmentID: uintPtr(1)},
			dept:       3,
			wantAction: domain.ActionSubmittedForReview,
		},
		{
			name:       "markets approves pending review",
			current:    domain.TenderPendingReview,
			target:     domain.TenderApproved,
			actor:      Actor{Role: domain.RoleMarkets},
			dept:       3,
			wantAction: domain.ActionApproved,
		},
		{
			name:       "controller rejects review",
			current:    domain.TenderReview,
			target:     domain.TenderRejected,
			actor:      Actor{Role: domain.RoleController},
			dept:       3,
			wantAction: domain.ActionRejected,
		},
		{
			name:       "supervisor approves review",
			current:    domain.TenderReview,
			target:     domain.TenderApproved,
			actor:      Actor{Role: domain.RoleSupervisor},
			dept:       3,
			wantAction: domain.ActionApproved,
		},
		{
			name:       "markets publishes approved",
			current:    domain.TenderApproved,
			target:     domain.TenderPublished,
			actor:      Actor{Role: domain.RoleMarkets},
			dept:       3,
			wantAction: domain.ActionPublished,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, err := Authorize(tt.current, tt.target, tt.actor, tt.dept)
			require.NoError(t, err)
			require.Equal(t, tt.wantAction, action)
		})
	}
}

func TestAuthorizeForbidden(t *testing.T) {
	tests := []struct {
		name    string
		current domain.TenderStatus
		target  domain.TenderStatus
		actor   Actor
		dept    uint
	}{
		{
			name:    "operational outside department cannot submit",
			current: domain.TenderDraft,
			target:  domain.TenderPendingReview,
			actor:   Actor{Role: domain.RoleOperational, DepartmentID: uintPtr(2)},
			dept:    3,
		},
		{
			name:    "operational with no department cannot submit",
			current: domain.TenderDraft,
			target:  domain.TenderPendingReview,
			actor:   Actor{Role: domain.RoleOperational},
			dept:    3,
		},
		{
			name:    "operational cannot approve",
			current: domain.TenderPendingReview,
			target:  domain.TenderApproved,
			actor:   Actor{Role: domain.RoleOperational, DepartmentID: uintPtr(3)},
			dept:    3,
		},
		{
			name:    "controller cannot publish",
			current: domain.TenderApproved,
			target:  domain.TenderPublished,
			actor:   Actor{Role: domain.RoleController},
			dept:    3,
		},
		{
			name:    "operational cannot reject",
			current: domain.TenderReview,
			target:  domain.TenderRejected,
			actor:   Actor{Role: domain.RoleOperational, DepartmentID: uintPtr(3)},
			dept:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Authorize(tt.current, tt.target, tt.actor, tt.dept)
			require.ErrorIs(t, err, domain.ErrForbidden)
		})
	}
}

func TestAuthorizeIllegalTransition(t *testing.T) {
	supervisor := Actor{Role: domain.RoleSupervisor}

	tests := []struct {
		name    string
		current domain.TenderStatus
		target  domain.TenderStatus
	}{
		{"draft cannot be approved directly", domain.TenderDraft, domain.TenderApproved},
		{"draft cannot be published directly", domain.TenderDraft, domain.TenderPublished},
		{"awarded cannot be requested", domain.TenderPublished, domain.TenderAwarded},
		{"rejected is terminal", domain.TenderRejected, domain.TenderPendingReview},
		{"awarded is terminal", domain.TenderAwarded, domain.TenderDraft},
		{"published cannot go back", domain.TenderPublished, domain.TenderApproved},
		{"approved cannot be rejected", domain.TenderApproved, domain.TenderRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Authorize(tt.current, tt.target, supervisor, 1)
			require.ErrorIs(t, err, domain.ErrIllegalTransition)
		})
	}
}

func TestAuthorizeUnknownStatus(t *testing.T) {
	_, err := Authorize(domain.TenderDraft, domain.TenderStatus("archived"), Actor{Role: domain.RoleSupervisor}, 1)
	require.ErrorIs(t, err, domain.ErrUnknownStatus)
}
