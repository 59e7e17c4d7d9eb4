package services

import (
	"context"
	"time"

	"tendertrack/internal/adapters/persistence/models"
	"tendertrack/internal/adapters/persistence/repositories"
	"tendertrack/internal/core/domain"

	"gorm.io/gorm"
)

// In-memory repository fakes shared by the service tests.

type fakeDepartmentRepo struct {
	departments map[uint]*models.Department
	nextID      uint
}

func newFakeDepartmentRepo(names ...string) *fakeDepartmentRepo {
	r := &fakeDepartmentRepo{departments: map[uint]*models.Department{}, nextID: 1}
	for _, name := range names {
		r.departments[r.nextID] = &models.Department{ID: r.nextID, Name: name}
		r.nextID++
	}
	return r
}

func (r *fakeDepartmentRepo) Create(_ context.Context, dept *models.Department) error {
	dept.ID = r.nextID
	r.nextID++
	r.departments[dept.ID] = dept
	return nil
}

func (r *fakeDepartmentRepo) GetByID(_ context.Context, id uint) (*models.Department, error) {
	dept, ok := r.departments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return dept, nil
}

func (r *fakeDepartmentRepo) GetByName(_ context.Context, name string) (*models.Department, error) {
	for _, dept := range r.departments {
		if dept.Name == name {
			return dept, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeDepartmentRepo) Update(_ context.Context, dept *models.Department) error {
	r.departments[dept.ID] = dept
	return nil
}

func (r *fakeDepartmentRepo) List(_ context.Context) ([]*models.Department, error) {
	var depts []*models.Department
	for id := uint(1); id < r.nextID; id++ {
		if dept, ok := r.departments[id]; ok {
			depts = append(depts, dept)
		}
	}
	return depts, nil
}

func (r *fakeDepartmentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.departments)), nil
}

type fakeTenderRepo struct {
	tenders map[uint]*models.Tender
	nextID  uint
	depts   *fakeDepartmentRepo
}

func newFakeTenderRepo(depts *fakeDepartmentRepo) *fakeTenderRepo {
	return &fakeTenderRepo{tenders: map[uint]*models.Tender{}, nextID: 1, depts: depts}
}

func (r *fakeTenderRepo) Create(_ context.Context, tender *models.Tender) error {
	tender.ID = r.nextID
	r.nextID++
	r.tenders[tender.ID] = tender
	return nil
}

func (r *fakeTenderRepo) GetByID(_ context.Context, id uint) (*models.Tender, error) {
	tender, ok := r.tenders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tender, nil
}

func (r *fakeTenderRepo) Update(_ context.Context, tender *models.Tender) error {
	r.tenders[tender.ID] = tender
	return nil
}

func (r *fakeTenderRepo) UpdateStatus(_ context.Context, id uint, status string) error {
	tender, ok := r.tenders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	tender.Status = status
	return nil
}

func (r *fakeTenderRepo) List(_ context.Context, filter repositories.TenderFilter, offset, limit int) ([]*models.Tender, int64, error) {
	var matched []*models.Tender
	for id := uint(1); id < r.nextID; id++ {
		tender, ok := r.tenders[id]
		if !ok {
			continue
		}
		if filter.Status != "" && tender.Status != filter.Status {
			continue
		}
		if filter.DepartmentID != nil && tender.DepartmentID != *filter.DepartmentID {
			continue
		}
		matched = append(matched, tender)
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *fakeTenderRepo) ExistsByReferenceNumber(_ context.Context, ref string) (bool, error) {
	for _, tender := range r.tenders {
		if tender.ReferenceNumber == ref {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTenderRepo) CountByStatus(_ context.Context) ([]repositories.TenderStatusCount, error) {
	counts := map[string]int64{}
	for _, tender := range r.tenders {
		counts[tender.Status]++
	}
	var rows []repositories.TenderStatusCount
	for status, count := range counts {
		rows = append(rows, repositories.TenderStatusCount{Status: status, Count: count})
	}
	return rows, nil
}

func (r *fakeTenderRepo) CountByDepartmentStatus(_ context.Context) ([]repositories.DepartmentStatusCount, error) {
	type key struct {
		dept   uint
		status string
	}
	counts := map[key]int64{}
	for _, tender := range r.tenders {
		counts[key{tender.DepartmentID, tender.Status}]++
	}
	var rows []repositories.DepartmentStatusCount
	for k, count := range counts {
		name := ""
		if dept, ok := r.depts.departments[k.dept]; ok {
			name = dept.Name
		}
		rows = append(rows, repositories.DepartmentStatusCount{
			DepartmentID:   k.dept,
			DepartmentName: name,
			Status:         k.status,
			Count:          count,
		})
	}
	return rows, nil
}

type fakeContractRepo struct {
	contracts map[uint]*models.Contract
	nextID    uint
	tenders   *fakeTenderRepo
}

func newFakeContractRepo(tenders *fakeTenderRepo) *fakeContractRepo {
	return &fakeContractRepo{contracts: map[uint]*models.Contract{}, nextID: 1, tenders: tenders}
}

func (r *fakeContractRepo) Award(ctx context.Context, contract *models.Contract) error {
	contract.ID = r.nextID
	r.nextID++
	r.contracts[contract.ID] = contract
	return r.tenders.UpdateStatus(ctx, contract.TenderID, string(domain.TenderAwarded))
}

func (r *fakeContractRepo) GetByID(_ context.Context, id uint) (*models.Contract, error) {
	contract, ok := r.contracts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return contract, nil
}

func (r *fakeContractRepo) Update(_ context.Context, contract *models.Contract) error {
	r.contracts[contract.ID] = contract
	return nil
}

func (r *fakeContractRepo) List(_ context.Context, tenderID *uint, offset, limit int) ([]*models.Contract, int64, error) {
	var contracts []*models.Contract
	for id := uint(1); id < r.nextID; id++ {
		contract, ok := r.contracts[id]
		if !ok {
			continue
		}
		if tenderID != nil && contract.TenderID != *tenderID {
			continue
		}
		contracts = append(contracts, contract)
	}
	total := int64(len(contracts))
	if offset >= len(contracts) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(contracts) {
		end = len(contracts)
	}
	return contracts[offset:end], total, nil
}

func (r *fakeContractRepo) ExistsByContractNumber(_ context.Context, number string) (bool, error) {
	for _, contract := range r.contracts {
		if contract.ContractNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeContractRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.contracts)), nil
}

type fakeServiceOrderRepo struct {
	orders map[uint]*models.ServiceOrder
	nextID uint
}

func newFakeServiceOrderRepo() *fakeServiceOrderRepo {
	return &fakeServiceOrderRepo{orders: map[uint]*models.ServiceOrder{}, nextID: 1}
}

func (r *fakeServiceOrderRepo) Create(_ context.Context, order *models.ServiceOrder) error {
	order.ID = r.nextID
	r.nextID++
	r.orders[order.ID] = order
	return nil
}

func (r *fakeServiceOrderRepo) GetByID(_ context.Context, id uint) (*models.ServiceOrder, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (r *fakeServiceOrderRepo) Update(_ context.Context, order *models.ServiceOrder) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeServiceOrderRepo) List(_ context.Context, contractID *uint, offset, limit int) ([]*models.ServiceOrder, int64, error) {
	var orders []*models.ServiceOrder
	for id := uint(1); id < r.nextID; id++ {
		order, ok := r.orders[id]
		if !ok {
			continue
		}
		if contractID != nil && order.ContractID != *contractID {
			continue
		}
		orders = append(orders, order)
	}
	total := int64(len(orders))
	if offset >= len(orders) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(orders) {
		end = len(orders)
	}
	return orders[offset:end], total, nil
}

func (r *fakeServiceOrderRepo) ExistsByOrderNumber(_ context.Context, number string) (bool, error) {
	for _, order := range r.orders {
		if order.OrderNumber == number {
			return true, nil
		}
	}
	return false, nil
}

type fakeActivityRepo struct {
	activities []*models.Activity
	nextID     uint
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{nextID: 1}
}

func (r *fakeActivityRepo) Create(_ context.Context, activity *models.Activity) error {
	activity.ID = r.nextID
	r.nextID++
	activity.CreatedAt = time.Now()
	r.activities = append(r.activities, activity)
	return nil
}

// ListRecent returns entries newest first, matching the SQL ordering
func (r *fakeActivityRepo) ListRecent(_ context.Context, limit int) ([]*models.Activity, error) {
	var out []*models.Activity
	for i := len(r.activities) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.activities[i])
	}
	return out, nil
}

func (r *fakeActivityRepo) ListByEntity(_ context.Context, entityType string, entityID uint) ([]*models.Activity, error) {
	var out []*models.Activity
	for i := len(r.activities) - 1; i >= 0; i-- {
		a := r.activities[i]
		if a.EntityType == entityType && a.EntityID == entityID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, offset, limit int) ([]*models.User, int64, error) {
	var users []*models.User
	for id := uint(1); id < r.nextID; id++ {
		if user, ok := r.users[id]; ok {
			users = append(users, user)
		}
	}
	total := int64(len(users))
	if offset >= len(users) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(users) {
		end = len(users)
	}
	return users[offset:end], total, nil
}

func (r *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(ctx, username)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeRefreshTokenRepo struct {
	tokens map[string]*models.RefreshToken
	nextID uint
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: map[string]*models.RefreshToken{}, nextID: 1}
}

func (r *fakeRefreshTokenRepo) Create(_ context.Context, token *models.RefreshToken) error {
	token.ID = r.nextID
	r.nextID++
	r.tokens[token.TokenHash] = token
	return nil
}

func (r *fakeRefreshTokenRepo) GetByTokenHash(_ context.Context, tokenHash string) (*models.RefreshToken, error) {
	token, ok := r.tokens[tokenHash]
	if !ok || token.IsRevoked() {
		return nil, gorm.ErrRecordNotFound
	}
	return token, nil
}

func (r *fakeRefreshTokenRepo) RevokeByTokenHash(_ context.Context, tokenHash string) error {
	if token, ok := r.tokens[tokenHash]; ok {
		now := time.Now()
		token.RevokedAt = &now
	}
	return nil
}

func (r *fakeRefreshTokenRepo) RevokeAllByUserID(_ context.Context, userID uint) error {
	now := time.Now()
	for _, token := range r.tokens {
		if token.UserID == userID && !token.IsRevoked() {
			token.RevokedAt = &now
		}
	}
	return nil
}

func (r *fakeRefreshTokenRepo) DeleteExpired(_ context.Context) error {
	for hash, token := range r.tokens {
		if token.IsExpired() {
			delete(r.tokens, hash)
		}
	}
	return nil
}
