package services

import (
	"context"
	"testing"

	"tendertrack/internal/adapters/persistence/models"
	"tendertrack/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestStatsGetAggregates(t *testing.T) {
	depts := newFakeDepartmentRepo("IT", "Finance", "HR")
	tenders := newFakeTenderRepo(depts)
	contracts := newFakeContractRepo(tenders)
	svc := NewStatsService(tenders, contracts, depts)

	ctx := context.Background()
	seed := []struct {
		dept   uint
		status domain.TenderStatus
	}{
		{1, domain.TenderDraft},
		{1, domain.TenderPendingReview},
		{1, domain.TenderReview},
		{1, domain.TenderPublished},
		{2, domain.TenderApproved},
		{2, domain.TenderAwarded},
		{2, domain.TenderRejected},
	}
	for i, s := range seed {
		require.NoError(t, tenders.Create(ctx, &models.Tender{
			ReferenceNumber: string(rune('A' + i)),
			Title:           "Seeded",
			Status:          string(s.status),
			DepartmentID:    s.dept,
			CreatedByID:     1,
		}))
	}
	require.NoError(t, contracts.Award(ctx, &models.Contract{
		ContractNumber: "CNT-1",
		TenderID:       6,
		Title:          "Supply contract",
		SupplierName:   "Vendor Co",
		Status:         string(domain.ContractActive),
		CreatedByID:    1,
	}))

	stats, err := svc.Get(ctx)
	require.NoError(t, err)

	// active counts every tender regardless of status
	require.Equal(t, int64(7), stats.ActiveTenders)
	require.Equal(t, int64(2), stats.PendingApprovals)
	require.Equal(t, int64(1), stats.PublishedTenders)
	require.Equal(t, int64(1), stats.AwardedContracts)

	require.Equal(t, StatusBreakdown{
		Draft:         1,
		PendingReview: 1,
		Review:        1,
		Approved:      1,
		Published:     1,
		Awarded:       1,
		Rejected:      1,
	}, stats.TendersByStatus)

	require.Len(t, stats.TendersByDepartment, 3)

	it := stats.TendersByDepartment[0]
	require.Equal(t, "IT", it.DepartmentName)
	require.Equal(t, int64(4), it.TenderCount)
	// pending_review and review fold into the review bucket
	require.Equal(t, DepartmentBreakdown{Draft: 1, Published: 1, Review: 2}, it.TendersByStatus)

	fin := stats.TendersByDepartment[1]
	require.Equal(t, "Finance", fin.DepartmentName)
	require.Equal(t, int64(3), fin.TenderCount)
	require.Equal(t, DepartmentBreakdown{Awarded: 1}, fin.TendersByStatus)

	// departments without tenders still appear
	hr := stats.TendersByDepartment[2]
	require.Equal(t, "HR", hr.DepartmentName)
	require.Equal(t, int64(0), hr.TenderCount)
}

func TestStatsGetEmpty(t *testing.T) {
	depts := newFakeDepartmentRepo("IT")
	tenders := newFakeTenderRepo(depts)
	contracts := newFakeContractRepo(tenders)
	svc := NewStatsService(tenders, contracts, depts)

	stats, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Zero(t, stats.ActiveTenders)
	require.Zero(t, stats.AwardedContracts)
	require.Len(t, stats.TendersByDepartment, 1)
	require.Zero(t, stats.TendersByDepartment[0].TenderCount)
}
