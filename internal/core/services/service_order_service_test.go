package services

import (
	"context"
	"testing"
	"time"

	"tendertrack/internal/adapters/persistence/models"
	"tendertrack/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func newOrderFixture(t *testing.T) (*ServiceOrderService, *fakeContractRepo, *fakeTenderRepo) {
	t.Helper()
	depts := newFakeDepartmentRepo("IT")
	tenders := newFakeTenderRepo(depts)
	contracts := newFakeContractRepo(tenders)
	orders := newFakeServiceOrderRepo()
	activities := newFakeActivityRepo()
	return NewServiceOrderService(orders, contracts, depts, activities), contracts, tenders
}

func seedContract(t *testing.T, contracts *fakeContractRepo, tenders *fakeTenderRepo, number string) *models.Contract {
	t.Helper()
	tender := seedTender(t, tenders, "TND-"+number, string(domain.TenderPublished))
	contract := &models.Contract{
		ContractNumber: number,
		TenderID:       tender.ID,
		Title:          "Supply contract",
		SupplierName:   "Vendor Co",
		Status:         string(domain.ContractActive),
		CreatedByID:    1,
	}
	require.NoError(t, contracts.Award(context.Background(), contract))
	return contract
}

func TestOrderCreateKeepsDates(t *testing.T) {
	svc, contracts, tenders := newOrderFixture(t)
	contract := seedContract(t, contracts, tenders, "CNT-2026-020")

	issued := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	done := issued.AddDate(0, 1, 0)

	order, err := svc.Create(context.Background(), 2, &CreateOrderInput{
		OrderNumber:    "ORD-2026-020",
		ContractID:     contract.ID,
		Description:    "Initial delivery",
		IssuedDate:     issued,
		CompletionDate: &done,
	})
	require.NoError(t, err)
	require.Equal(t, string(domain.OrderPending), order.Status)
	require.Equal(t, issued, order.IssuedDate)
	require.NotNil(t, order.CompletionDate)
	require.Equal(t, done, *order.CompletionDate)
}

func TestOrderCreateUnknownContract(t *testing.T) {
	svc, _, _ := newOrderFixture(t)

	_, err := svc.Create(context.Background(), 2, &CreateOrderInput{
		OrderNumber: "ORD-2026-021",
		ContractID:  99,
		IssuedDate:  time.Now(),
	})
	require.ErrorIs(t, err, ErrContractNotFound)
}

func TestOrderCreateDuplicateNumber(t *testing.T) {
	svc, contracts, tenders := newOrderFixture(t)
	contract := seedContract(t, contracts, tenders, "CNT-2026-022")

	input := &CreateOrderInput{
		OrderNumber: "ORD-2026-022",
		ContractID:  contract.ID,
		IssuedDate:  time.Now(),
	}
	_, err := svc.Create(context.Background(), 2, input)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), 2, input)
	require.ErrorIs(t, err, ErrOrderNumberExists)
}

func TestOrderUpdateStatusAndCompletion(t *testing.T) {
	svc, contracts, tenders := newOrderFixture(t)
	contract := seedContract(t, contracts, tenders, "CNT-2026-023")

	order, err := svc.Create(context.Background(), 2, &CreateOrderInput{
		OrderNumber: "ORD-2026-023",
		ContractID:  contract.ID,
		IssuedDate:  time.Now(),
	})
	require.NoError(t, err)

	bad := "paused"
	_, err = svc.Update(context.Background(), 2, order.ID, &UpdateOrderInput{Status: &bad})
	require.ErrorIs(t, err, ErrInvalidStatus)

	good := string(domain.OrderCompleted)
	done := time.Now()
	updated, err := svc.Update(context.Background(), 2, order.ID, &UpdateOrderInput{Status: &good, CompletionDate: &done})
	require.NoError(t, err)
	require.Equal(t, good, updated.Status)
	require.NotNil(t, updated.CompletionDate)
}
