package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/HifricAldar/cloud-computing/apperrors"
	"github.com/HifricAldar/cloud-computing/controllers"
	"github.com/HifricAldar/cloud-computing/models"
	"github.com/HifricAldar/cloud-computing/repository"
	"github.com/HifricAldar/cloud-computing/routes"
	"github.com/HifricAldar/cloud-computing/services"
	"github.com/HifricAldar/cloud-computing/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// memStore backs every repository with maps, so the handler tests run
// the full middleware -> controller -> service chain without a database.
type memStore struct {
	users         map[uuid.UUID]*models.User
	byEmail       map[string]uuid.UUID
	otps          map[uuid.UUID]*models.Otp
	foods         map[uint]*models.Food
	nextFood      uint
	groups        []models.FoodGroup
	rates         map[string]*models.FoodRate
	ledger        []models.PointHistory
	gifts         []models.Gift
	scans         int
	foodHistories int
}

func newMemStore() *memStore {
	return &memStore{
		users:   make(map[uuid.UUID]*models.User),
		byEmail: make(map[string]uuid.UUID),
		otps:    make(map[uuid.UUID]*models.Otp),
		foods:   make(map[uint]*models.Food),
		rates:   make(map[string]*models.FoodRate),
	}
}

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.s.users[user.ID] = user
	r.s.byEmail[user.Email] = user.ID
	return nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	id, ok := r.s.byEmail[email]
	if !ok {
		return nil, apperrors.NotFound("user")
	}
	return r.s.users[id], nil
}

func (r memUsers) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := r.s.users[id]
	if !ok {
		return nil, apperrors.NotFound("user")
	}
	return user, nil
}

func (r memUsers) Save(_ context.Context, user *models.User) error {
	r.s.users[user.ID] = user
	return nil
}

type memOtps struct{ s *memStore }

func (r memOtps) Replace(_ context.Context, otp *models.Otp) error {
	if otp.ID == uuid.Nil {
		otp.ID = uuid.New()
	}
	r.s.otps[otp.UserID] = otp
	return nil
}

func (r memOtps) FindByUserID(_ context.Context, userID uuid.UUID) (*models.Otp, error) {
	otp, ok := r.s.otps[userID]
	if !ok {
		return nil, apperrors.NotFound("otp")
	}
	return otp, nil
}

func (r memOtps) Delete(_ context.Context, id uuid.UUID) error {
	for userID, otp := range r.s.otps {
		if otp.ID == id {
			delete(r.s.otps, userID)
		}
	}
	return nil
}

type memFoods struct{ s *memStore }

func (r memFoods) Create(_ context.Context, food *models.Food) error {
	r.s.nextFood++
	food.ID = r.s.nextFood
	r.s.foods[food.ID] = food
	return nil
}

func (r memFoods) FindByID(_ context.Context, id uint) (*models.Food, error) {
	food, ok := r.s.foods[id]
	if !ok {
		return nil, apperrors.NotFound("food")
	}
	return food, nil
}

func (r memFoods) Save(_ context.Context, food *models.Food) error {
	r.s.foods[food.ID] = food
	return nil
}

func (r memFoods) List(_ context.Context, params repository.ListFoodsParams) ([]models.Food, int64, error) {
	var all []models.Food
	for id := uint(1); id <= r.s.nextFood; id++ {
		if food, ok := r.s.foods[id]; ok {
			all = append(all, *food)
		}
	}
	total := int64(len(all))
	if params.Offset >= len(all) {
		return nil, total, nil
	}
	end := params.Offset + params.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[params.Offset:end], total, nil
}

type memGroups struct{ s *memStore }

func (r memGroups) All(_ context.Context) ([]models.FoodGroup, error) {
	return r.s.groups, nil
}

type memRates struct{ s *memStore }

func rateKey(userID uuid.UUID, foodID uint) string {
	return userID.String() + "/" + strconv.FormatUint(uint64(foodID), 10)
}

func (r memRates) Find(_ context.Context, userID uuid.UUID, foodID uint) (*models.FoodRate, error) {
	rate, ok := r.s.rates[rateKey(userID, foodID)]
	if !ok {
		return nil, nil
	}
	return rate, nil
}

func (r memRates) Upsert(_ context.Context, rate *models.FoodRate) error {
	r.s.rates[rateKey(rate.UserID, rate.FoodID)] = rate
	return nil
}

type memHistory struct{ s *memStore }

func (r memHistory) AddFoodHistory(_ context.Context, userID uuid.UUID, foodID uint) (*models.FoodHistory, error) {
	r.s.foodHistories++
	return &models.FoodHistory{UserID: userID, FoodID: foodID}, nil
}

func (r memHistory) AddScanHistory(_ context.Context, userID uuid.UUID) (*models.ScanHistory, error) {
	r.s.scans++
	return &models.ScanHistory{UserID: userID}, nil
}

type memPoints struct{ s *memStore }

func (r memPoints) Award(_ context.Context, userID uuid.UUID, delta int, description string) error {
	user, ok := r.s.users[userID]
	if !ok {
		return apperrors.NotFound("user")
	}
	user.Point += delta
	r.s.ledger = append(r.s.ledger, models.PointHistory{UserID: userID, Point: delta, Description: description})
	return nil
}

func (r memPoints) HistoryForUser(_ context.Context, userID uuid.UUID) ([]models.PointHistory, error) {
	var entries []models.PointHistory
	for _, entry := range r.s.ledger {
		if entry.UserID == userID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (r memPoints) Gifts(_ context.Context) ([]models.Gift, error) {
	return r.s.gifts, nil
}

type memMailer struct{ sent []string }

func (m *memMailer) SendOtpEmail(_ context.Context, to, code string) error {
	m.sent = append(m.sent, code)
	return nil
}

type memUploader struct{ url string }

func (u memUploader) UploadBase64Image(_ context.Context, _, _ string) (string, error) {
	return u.url, nil
}

type testServer struct {
	router *gin.Engine
	store  *memStore
	mailer *memMailer
}

// newTestServer assembles the real router over the in-memory store. The
// OCR and news upstreams point at the given httptest servers; pass ""
// for endpoints a test does not touch.
func newTestServer(t *testing.T, ocrURL, newsURL string) *testServer {
	t.Helper()

	store := newMemStore()
	mailer := &memMailer{}
	log := zap.NewNop()

	otpSvc := services.NewOtpService(memOtps{store}, memUsers{store}, mailer, log)
	userSvc := services.NewUserService(memUsers{store}, otpSvc, testSecret, time.Hour)
	authSvc := services.NewAuthService(memUsers{store}, testSecret, time.Hour)
	foodSvc := services.NewFoodService(memFoods{store}, memGroups{store}, memRates{store}, memHistory{store}, nil, log)
	analysisSvc := services.NewAnalysisService(services.NewOCRClient(ocrURL, log), memPoints{store}, memHistory{store}, log)
	newsSvc := services.NewNewsService(newsURL, log)
	pointSvc := services.NewPointService(memPoints{store})
	google := services.NewGoogleProvider("client-id", "client-secret", "http://localhost/auth/google/callback")

	router := routes.SetupRouter(
		testSecret,
		controllers.NewUserController(userSvc, otpSvc, authSvc),
		controllers.NewAuthController(google, authSvc),
		controllers.NewFoodController(foodSvc, analysisSvc, newsSvc, memUploader{url: "https://cdn.example.com/food.png"}),
		controllers.NewPointController(pointSvc),
	)

	return &testServer{router: router, store: store, mailer: mailer}
}

// seedVerifiedUser stores a user and returns a bearer token for them.
func (ts *testServer) seedVerifiedUser(t *testing.T, email string) (*models.User, string) {
	t.Helper()

	hash, err := utils.HashPassword("hunter2hunter2")
	require.NoError(t, err)

	user := &models.User{Email: email, Password: hash, Name: "Test", Verified: true}
	require.NoError(t, memUsers{ts.store}.Create(context.Background(), user))

	token, err := utils.GenerateJWT(testSecret, user.ID, email, time.Hour)
	require.NoError(t, err)
	return user, "Bearer " + token
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}
