package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tendertrack/internal/adapters/persistence/models"
	"tendertrack/internal/adapters/persistence/repositories"
	"tendertrack/internal/core/domain"
	"tendertrack/internal/core/services"
	"tendertrack/internal/core/workflow"
	"tendertrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Minimal in-memory repos backing the handler tests.

type memTenderRepo struct {
	tenders map[uint]*models.Tender
	nextID  uint
}

func (r *memTenderRepo) Create(_ context.Context, tender *models.Tender) error {
	tender.ID = r.nextID
	r.nextID++
	r.tenders[tender.ID] = tender
	return nil
}

func (r *memTenderRepo) GetByID(_ context.Context, id uint) (*models.Tender, error) {
	tender, ok := r.tenders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tender, nil
}

func (r *memTenderRepo) Update(_ context.Context, tender *models.Tender) error {
	r.tenders[tender.ID] = tender
	return nil
}

func (r *memTenderRepo) UpdateStatus(_ context.Context, id uint, status string) error {
	tender, ok := r.tenders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	tender.Status = status
	return nil
}

func (r *memTenderRepo) List(_ context.Context, _ repositories.TenderFilter, _, _ int) ([]*models.Tender, int64, error) {
	var out []*models.Tender
	for id := uint(1); id < r.nextID; id++ {
		if tender, ok := r.tenders[id]; ok {
			out = append(out, tender)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memTenderRepo) ExistsByReferenceNumber(_ context.Context, ref string) (bool, error) {
	for _, tender := range r.tenders {
		if tender.ReferenceNumber == ref {
			return true, nil
		}
	}
	return false, nil
}

func (r *memTenderRepo) CountByStatus(_ context.Context) ([]repositories.TenderStatusCount, error) {
	return nil, nil
}

func (r *memTenderRepo) CountByDepartmentStatus(_ context.Context) ([]repositories.DepartmentStatusCount, error) {
	return nil, nil
}

type memDepartmentRepo struct {
	departments map[uint]*models.Department
}

func (r *memDepartmentRepo) Create(_ context.Context, dept *models.Department) error {
	r.departments[dept.ID] = dept
	return nil
}

func (r *memDepartmentRepo) GetByID(_ context.Context, id uint) (*models.Department, error) {
	dept, ok := r.departments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return dept, nil
}

func (r *memDepartmentRepo) GetByName(_ context.Context, _ string) (*models.Department, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *memDepartmentRepo) Update(_ context.Context, dept *models.Department) error {
	r.departments[dept.ID] = dept
	return nil
}

func (r *memDepartmentRepo) List(_ context.Context) ([]*models.Department, error) {
	return nil, nil
}

func (r *memDepartmentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.departments)), nil
}

type memContractRepo struct {
	contracts map[uint]*models.Contract
	nextID    uint
	tenders   *memTenderRepo
}

func (r *memContractRepo) Award(ctx context.Context, contract *models.Contract) error {
	contract.ID = r.nextID
	r.nextID++
	r.contracts[contract.ID] = contract
	return r.tenders.UpdateStatus(ctx, contract.TenderID, string(domain.TenderAwarded))
}

func (r *memContractRepo) GetByID(_ context.Context, id uint) (*models.Contract, error) {
	contract, ok := r.contracts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return contract, nil
}

func (r *memContractRepo) Update(_ context.Context, contract *models.Contract) error {
	r.contracts[contract.ID] = contract
	return nil
}

func (r *memContractRepo) List(_ context.Context, _ *uint, _, _ int) ([]*models.Contract, int64, error) {
	return nil, 0, nil
}

func (r *memContractRepo) ExistsByContractNumber(_ context.Context, number string) (bool, error) {
	for _, contract := range r.contracts {
		if contract.ContractNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (r *memContractRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.contracts)), nil
}

type memActivityRepo struct {
	activities []*models.Activity
}

func (r *memActivityRepo) Create(_ context.Context, activity *models.Activity) error {
	activity.ID = uint(len(r.activities) + 1)
	r.activities = append(r.activities, activity)
	return nil
}

func (r *memActivityRepo) ListRecent(_ context.Context, _ int) ([]*models.Activity, error) {
	return nil, nil
}

func (r *memActivityRepo) ListByEntity(_ context.Context, entityType string, entityID uint) ([]*models.Activity, error) {
	var out []*models.Activity
	for i := len(r.activities) - 1; i >= 0; i-- {
		a := r.activities[i]
		if a.EntityType == entityType && a.EntityID == entityID {
			out = append(out, a)
		}
	}
	return out, nil
}

// asActor injects request locals the way the auth middleware would
func asActor(actor workflow.Actor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", actor.UserID)
		c.Locals("role", string(actor.Role))
		c.Locals("departmentID", actor.DepartmentID)
		return c.Next()
	}
}

type tenderTestApp struct {
	app     *fiber.App
	tenders *memTenderRepo
	actor   *workflow.Actor
}

func newTenderTestApp(t *testing.T) *tenderTestApp {
	t.Helper()

	tenders := &memTenderRepo{tenders: map[uint]*models.Tender{}, nextID: 1}
	contracts := &memContractRepo{contracts: map[uint]*models.Contract{}, nextID: 1, tenders: tenders}
	depts := &memDepartmentRepo{departments: map[uint]*models.Department{
		1: {ID: 1, Name: "IT"},
		2: {ID: 2, Name: "Finance"},
	}}
	activities := &memActivityRepo{}
	tenderHandler := NewTenderHandler(services.NewTenderService(tenders, depts, activities))
	contractHandler := NewContractHandler(services.NewContractService(contracts, tenders, activities))

	ta := &tenderTestApp{tenders: tenders, actor: &workflow.Actor{}}

	app := fiber.New()
	injectActor := func(c *fiber.Ctx) error {
		return asActor(*ta.actor)(c)
	}
	group := app.Group("/api/v1/tenders", injectActor)
	group.Post("/", tenderHandler.Create)
	group.Get("/:id", tenderHandler.Get)
	group.Post("/:id/status", tenderHandler.ChangeStatus)
	group.Get("/:id/activities", tenderHandler.Activities)
	app.Post("/api/v1/contracts", injectActor, contractHandler.Create)

	ta.app = app
	return ta
}

func (ta *tenderTestApp) do(t *testing.T, method, path string, body interface{}) (*http.Response, response.Response) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ta.app.Test(req)
	require.NoError(t, err)

	var parsed response.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestTenderCreateEndpoint(t *testing.T) {
	ta := newTenderTestApp(t)
	dept := uint(1)
	*ta.actor = workflow.Actor{UserID: 1, Role: domain.RoleOperational, DepartmentID: &dept}

	resp, body := ta.do(t, fiber.MethodPost, "/api/v1/tenders/", fiber.Map{
		"reference_number": "TND-2026-050",
		"title":            "Backup appliances",
		"department_id":    1,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.True(t, body.Success)

	resp, _ = ta.do(t, fiber.MethodPost, "/api/v1/tenders/", fiber.Map{
		"reference_number": "TND-2026-050",
		"title":            "Duplicate",
		"department_id":    1,
	})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestTenderCreatePersistsScheduleFields(t *testing.T) {
	ta := newTenderTestApp(t)
	dept := uint(1)
	*ta.actor = workflow.Actor{UserID: 1, Role: domain.RoleOperational, DepartmentID: &dept}

	resp, body := ta.do(t, fiber.MethodPost, "/api/v1/tenders/", fiber.Map{
		"reference_number": "TND-2026-070",
		"title":            "Scanner fleet",
		"department_id":    1,
		"assigned_to_id":   4,
		"budget":           "100000",
		"documents":        []string{"tender-notice.pdf", "specs.pdf"},
		"publication_date": "2026-09-01T00:00:00Z",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	tender, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "100000", tender["budget"])
	require.Equal(t, []interface{}{"tender-notice.pdf", "specs.pdf"}, tender["documents"])
	require.Equal(t, "2026-09-01T00:00:00Z", tender["publication_date"])
	require.Equal(t, float64(4), tender["assigned_to_id"])
}

func TestTenderCreateValidation(t *testing.T) {
	ta := newTenderTestApp(t)
	*ta.actor = workflow.Actor{UserID: 1, Role: domain.RoleMarkets}

	resp, body := ta.do(t, fiber.MethodPost, "/api/v1/tenders/", fiber.Map{
		"title": "Missing reference and department",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.False(t, body.Success)
	require.Contains(t, body.Fields, "reference_number")
}

func TestChangeStatusEndpointCodes(t *testing.T) {
	ta := newTenderTestApp(t)
	dept1, dept2 := uint(1), uint(2)
	*ta.actor = workflow.Actor{UserID: 1, Role: domain.RoleOperational, DepartmentID: &dept1}

	resp, _ := ta.do(t, fiber.MethodPost, "/api/v1/tenders/", fiber.Map{
		"reference_number": "TND-2026-051",
		"title":            "Fleet maintenance",
		"department_id":    1,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// unknown target status
	resp, _ = ta.do(t, fiber.MethodPost, "/api/v1/tenders/1/status", fiber.Map{"status": "archived"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// legal edge, wrong actor: operational from another department
	*ta.actor = workflow.Actor{UserID: 2, Role: domain.RoleOperational, DepartmentID: &dept2}
	resp, _ = ta.do(t, fiber.MethodPost, "/api/v1/tenders/1/status", fiber.Map{"status": "pending_review"})
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// illegal edge for anyone
	*ta.actor = workflow.Actor{UserID: 3, Role: domain.RoleSupervisor}
	resp, _ = ta.do(t, fiber.MethodPost, "/api/v1/tenders/1/status", fiber.Map{"status": "published"})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// the owning department submits it
	*ta.actor = workflow.Actor{UserID: 1, Role: domain.RoleOperational, DepartmentID: &dept1}
	resp, body := ta.do(t, fiber.MethodPost, "/api/v1/tenders/1/status", fiber.Map{"status": "pending_review"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.True(t, body.Success)

	// unknown tender
	resp, _ = ta.do(t, fiber.MethodPost, "/api/v1/tenders/99/status", fiber.Map{"status": "pending_review"})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestTenderActivitiesEndpoint(t *testing.T) {
	ta := newTenderTestApp(t)
	dept := uint(1)
	*ta.actor = workflow.Actor{UserID: 1, Role: domain.RoleOperational, DepartmentID: &dept}

	resp, _ := ta.do(t, fiber.MethodPost, "/api/v1/tenders/", fiber.Map{
		"reference_number": "TND-2026-052",
		"title":            "Security audit",
		"department_id":    1,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = ta.do(t, fiber.MethodPost, "/api/v1/tenders/1/status", fiber.Map{"status": "pending_review"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body := ta.do(t, fiber.MethodGet, "/api/v1/tenders/1/activities", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	trail, ok := body.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, trail, 2)
	first, ok := trail[0].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, string(domain.ActionSubmittedForReview), first["action"])
}

// TestWorkflowScenarioOverHTTP walks one tender through the full lifecycle
// via the API and checks the resulting audit trail.
func TestWorkflowScenarioOverHTTP(t *testing.T) {
	ta := newTenderTestApp(t)
	dept := uint(1)

	// department member drafts and submits
	*ta.actor = workflow.Actor{UserID: 1, Role: domain.RoleOperational, DepartmentID: &dept}
	resp, _ := ta.do(t, fiber.MethodPost, "/api/v1/tenders/", fiber.Map{
		"reference_number": "TND-2026-060",
		"title":            "Warehouse racking",
		"department_id":    1,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = ta.do(t, fiber.MethodPost, "/api/v1/tenders/1/status", fiber.Map{"status": "pending_review"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// markets approves
	*ta.actor = workflow.Actor{UserID: 2, Role: domain.RoleMarkets}
	resp, _ = ta.do(t, fiber.MethodPost, "/api/v1/tenders/1/status", fiber.Map{"status": "approved"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// supervisor publishes
	*ta.actor = workflow.Actor{UserID: 3, Role: domain.RoleSupervisor}
	resp, _ = ta.do(t, fiber.MethodPost, "/api/v1/tenders/1/status", fiber.Map{"status": "published"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// markets creates the contract, which awards the tender
	*ta.actor = workflow.Actor{UserID: 2, Role: domain.RoleMarkets}
	resp, _ = ta.do(t, fiber.MethodPost, "/api/v1/contracts", fiber.Map{
		"contract_number": "CNT-2026-060",
		"tender_id":       1,
		"title":           "Racking supply and installation",
		"supplier_name":   "Rack Systems Ltd",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := ta.do(t, fiber.MethodGet, "/api/v1/tenders/1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	tender, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, string(domain.TenderAwarded), tender["status"])

	resp, body = ta.do(t, fiber.MethodGet, "/api/v1/tenders/1/activities", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	trail, ok := body.Data.([]interface{})
	require.True(t, ok)

	var actions []string
	for _, raw := range trail {
		entry, ok := raw.(map[string]interface{})
		require.True(t, ok)
		actions = append(actions, entry["action"].(string))
	}
	require.Equal(t, []string{
		string(domain.ActionAwarded),
		string(domain.ActionPublished),
		string(domain.ActionApproved),
		string(domain.ActionSubmittedForReview),
		string(domain.ActionCreated),
	}, actions)
}

func TestTenderGetEndpointBadID(t *testing.T) {
	ta := newTenderTestApp(t)
	*ta.actor = workflow.Actor{UserID: 1, Role: domain.RoleSupervisor}

	for _, path := range []string{"/api/v1/tenders/0", "/api/v1/tenders/abc"} {
		resp, _ := ta.do(t, fiber.MethodGet, path, nil)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode, fmt.Sprintf("path %s", path))
	}
}
