package services

import (
	"context"

	"tendertrack/internal/adapters/persistence/repositories"
	"tendertrack/internal/core/domain"
)

// StatusBreakdown counts tenders per workflow status
type StatusBreakdown struct {
	Draft         int64 `json:"draft"`
	PendingReview int64 `json:"pending_review"`
	Review        int64 `json:"review"`
	Approved      int64 `json:"approved"`
	Published     int64 `json:"published"`
	Awarded       int64 `json:"awarded"`
	Rejected      int64 `json:"rejected"`
}

// DepartmentBreakdown counts a department's tenders by coarse bucket.
// The review bucket folds pending_review and review together.
type DepartmentBreakdown struct {
	Draft     int64 `json:"draft"`
	Published int64 `json:"published"`
	Awarded   int64 `json:"awarded"`
	Review    int64 `json:"review"`
}

// DepartmentStats is one department's slice of the dashboard
type DepartmentStats struct {
	DepartmentID    uint                `json:"department_id"`
	DepartmentName  string              `json:"department_name"`
	TenderCount     int64               `json:"tender_count"`
	TendersByStatus DepartmentBreakdown `json:"tenders_by_status"`
}

// Stats is the dashboard aggregate
type Stats struct {
	ActiveTenders       int64             `json:"active_tenders"`
	PendingApprovals    int64             `json:"pending_approvals"`
	PublishedTenders    int64             `json:"published_tenders"`
	AwardedContracts    int64             `json:"awarded_contracts"`
	TendersByStatus     StatusBreakdown   `json:"tenders_by_status"`
	TendersByDepartment []DepartmentStats `json:"tenders_by_department"`
}

// StatsService aggregates dashboard statistics
type StatsService struct {
	tenderRepo   repositories.TenderRepository
	contractRepo repositories.ContractRepository
	deptRepo     repositories.DepartmentRepository
}

// NewStatsService creates a new stats service
func NewStatsService(
	tenderRepo repositories.TenderRepository,
	contractRepo repositories.ContractRepository,
	deptRepo repositories.DepartmentRepository,
) *StatsService {
	return &StatsService{
		tenderRepo:   tenderRepo,
		contractRepo: contractRepo,
		deptRepo:     deptRepo,
	}
}

// Get builds the dashboard aggregate from grouped counts
func (s *StatsService) Get(ctx context.Context) (*Stats, error) {
	statusRows, err := s.tenderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	for _, row := range statusRows {
		stats.ActiveTenders += row.Count
		switch domain.TenderStatus(row.Status) {
		case domain.TenderDraft:
			stats.TendersByStatus.Draft = row.Count
		case domain.TenderPendingReview:
			stats.TendersByStatus.PendingReview = row.Count
			stats.PendingApprovals += row.Count
		case domain.TenderReview:
			stats.TendersByStatus.Review = row.Count
			stats.PendingApprovals += row.Count
		case domain.TenderApproved:
			stats.TendersByStatus.Approved = row.Count
		case domain.TenderPublished:
			stats.TendersByStatus.Published = row.Count
			stats.PublishedTenders = row.Count
		case domain.TenderAwarded:
			stats.TendersByStatus.Awarded = row.Count
		case domain.TenderRejected:
			stats.TendersByStatus.Rejected = row.Count
		}
	}

	contracts, err := s.contractRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.AwardedContracts = contracts

	// Every department appears in the breakdown, including those without
	// tenders yet.
	departments, err := s.deptRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byDept := make(map[uint]*DepartmentStats, len(departments))
	for _, dept := range departments {
		byDept[dept.ID] = &DepartmentStats{
			DepartmentID:   dept.ID,
			DepartmentName: dept.Name,
		}
	}

	deptRows, err := s.tenderRepo.CountByDepartmentStatus(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range deptRows {
		ds, ok := byDept[row.DepartmentID]
		if !ok {
			continue
		}
		ds.TenderCount += row.Count
		switch domain.TenderStatus(row.Status) {
		case domain.TenderDraft:
			ds.TendersByStatus.Draft += row.Count
		case domain.TenderPublished:
			ds.TendersByStatus.Published += row.Count
		case domain.TenderAwarded:
			ds.TendersByStatus.Awarded += row.Count
		case domain.TenderPendingReview, domain.TenderReview:
			ds.TendersByStatus.Review += row.Count
		}
	}

	stats.TendersByDepartment = make([]DepartmentStats, 0, len(departments))
	for _, dept := range departments {
		stats.TendersByDepartment = append(stats.TendersByDepartment, *byDept[dept.ID])
	}

	return stats, nil
}
