package services

import (
	"context"
	"strings"
	"sync"

	"github.com/HifricAldar/cloud-computing/apperrors"
	"github.com/HifricAldar/cloud-computing/models"
	"github.com/HifricAldar/cloud-computing/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*models.User
	byEmail map[string]uuid.UUID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:   make(map[uuid.UUID]*models.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	copied := *user
	r.users[user.ID] = &copied
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, apperrors.NotFound("user")
	}
	copied := *r.users[id]
	return &copied, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.NotFound("user")
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) Save(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users[user.ID] = &copied
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type fakeOtpRepo struct {
	mu     sync.Mutex
	byUser map[uuid.UUID]*models.Otp
}

func newFakeOtpRepo() *fakeOtpRepo {
	return &fakeOtpRepo{byUser: make(map[uuid.UUID]*models.Otp)}
}

func (r *fakeOtpRepo) Replace(_ context.Context, otp *models.Otp) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if otp.ID == uuid.Nil {
		otp.ID = uuid.New()
	}
	copied := *otp
	r.byUser[otp.UserID] = &copied
	return nil
}

func (r *fakeOtpRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*models.Otp, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	otp, ok := r.byUser[userID]
	if !ok {
		return nil, apperrors.NotFound("otp")
	}
	copied := *otp
	return &copied, nil
}

func (r *fakeOtpRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for userID, otp := range r.byUser {
		if otp.ID == id {
			delete(r.byUser, userID)
		}
	}
	return nil
}

type fakeFoodRepo struct {
	mu     sync.Mutex
	nextID uint
	foods  map[uint]*models.Food
}

func newFakeFoodRepo() *fakeFoodRepo {
	return &fakeFoodRepo{nextID: 1, foods: make(map[uint]*models.Food)}
}

func (r *fakeFoodRepo) Create(_ context.Context, food *models.Food) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	food.ID = r.nextID
	r.nextID++
	copied := *food
	r.foods[food.ID] = &copied
	return nil
}

func (r *fakeFoodRepo) FindByID(_ context.Context, id uint) (*models.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	food, ok := r.foods[id]
	if !ok {
		return nil, apperrors.NotFound("food")
	}
	copied := *food
	return &copied, nil
}

func (r *fakeFoodRepo) Save(_ context.Context, food *models.Food) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.foods[food.ID]; !ok {
		return apperrors.NotFound("food")
	}
	copied := *food
	r.foods[food.ID] = &copied
	return nil
}

// List mirrors the SQL predicate: case-insensitive substring on name AND
// containment of every requested tag id.
func (r *fakeFoodRepo) List(_ context.Context, params repository.ListFoodsParams) ([]models.Food, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []models.Food
	for id := uint(1); id < r.nextID; id++ {
		food, ok := r.foods[id]
		if !ok {
			continue
		}
		if params.Name != "" && !containsFold(food.Name, params.Name) {
			continue
		}
		if !containsAllTags(food.Tags, params.Tags) {
			continue
		}
		matched = append(matched, *food)
	}

	total := int64(len(matched))
	if params.Offset >= len(matched) {
		return nil, total, nil
	}
	end := params.Offset + params.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[params.Offset:end], total, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func containsAllTags(tags []int64, wanted []int64) bool {
	for _, w := range wanted {
		found := false
		for _, t := range tags {
			if t == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

type fakeGroupRepo struct {
	groups []models.FoodGroup
	calls  int
}

func (r *fakeGroupRepo) All(_ context.Context) ([]models.FoodGroup, error) {
	r.calls++
	return r.groups, nil
}

type ratePair struct {
	userID uuid.UUID
	foodID uint
}

type fakeRateRepo struct {
	mu    sync.Mutex
	rates map[ratePair]*models.FoodRate
}

func newFakeRateRepo() *fakeRateRepo {
	return &fakeRateRepo{rates: make(map[ratePair]*models.FoodRate)}
}

func rateKey(userID uuid.UUID, foodID uint) ratePair {
	return ratePair{userID: userID, foodID: foodID}
}

func (r *fakeRateRepo) Find(_ context.Context, userID uuid.UUID, foodID uint) (*models.FoodRate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rate, ok := r.rates[rateKey(userID, foodID)]
	if !ok {
		return nil, nil
	}
	copied := *rate
	return &copied, nil
}

func (r *fakeRateRepo) Upsert(_ context.Context, rate *models.FoodRate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *rate
	r.rates[rateKey(rate.UserID, rate.FoodID)] = &copied
	return nil
}

func (r *fakeRateRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rates)
}

type fakeHistoryRepo struct {
	mu     sync.Mutex
	nextID uint
	food   []models.FoodHistory
	scans  []models.ScanHistory
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{nextID: 1}
}

func (r *fakeHistoryRepo) AddFoodHistory(_ context.Context, userID uuid.UUID, foodID uint) (*models.FoodHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry := models.FoodHistory{UserID: userID, FoodID: foodID}
	entry.ID = r.nextID
	r.nextID++
	r.food = append(r.food, entry)
	return &entry, nil
}

func (r *fakeHistoryRepo) AddScanHistory(_ context.Context, userID uuid.UUID) (*models.ScanHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry := models.ScanHistory{UserID: userID}
	entry.ID = r.nextID
	r.nextID++
	r.scans = append(r.scans, entry)
	return &entry, nil
}

// fakePointRepo applies the balance update and ledger append under one
// lock, matching the transactional contract of the real repository.
type fakePointRepo struct {
	mu       sync.Mutex
	balances map[uuid.UUID]int
	ledger   []models.PointHistory
}

func newFakePointRepo() *fakePointRepo {
	return &fakePointRepo{balances: make(map[uuid.UUID]int)}
}

func (r *fakePointRepo) Award(_ context.Context, userID uuid.UUID, delta int, description string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balances[userID] += delta
	r.ledger = append(r.ledger, models.PointHistory{
		UserID:      userID,
		Point:       delta,
		Description: description,
	})
	return nil
}

func (r *fakePointRepo) HistoryForUser(_ context.Context, userID uuid.UUID) ([]models.PointHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var entries []models.PointHistory
	for _, entry := range r.ledger {
		if entry.UserID == userID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (r *fakePointRepo) Gifts(_ context.Context) ([]models.Gift, error) {
	return nil, nil
}

func (r *fakePointRepo) ledgerSum(userID uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	sum := 0
	for _, entry := range r.ledger {
		if entry.UserID == userID {
			sum += entry.Point
		}
	}
	return sum
}

type fakeMailer struct {
	mu    sync.Mutex
	sent  []string // codes, in send order
	to    []string
	fail  bool
	calls int
}

func (m *fakeMailer) SendOtpEmail(_ context.Context, to, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.fail {
		return context.DeadlineExceeded
	}
	m.to = append(m.to, to)
	m.sent = append(m.sent, code)
	return nil
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
