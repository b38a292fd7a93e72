package services

import (
	"context"
	"math"
	"strings"

	"github.com/HifricAldar/cloud-computing/apperrors"
	"github.com/HifricAldar/cloud-computing/models"
	"github.com/HifricAldar/cloud-computing/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type FoodService struct {
	foods   repository.FoodRepository
	groups  repository.FoodGroupRepository
	rates   repository.FoodRateRepository
	history repository.HistoryRepository
	cache   *GroupCache
	log     *zap.Logger
}

func NewFoodService(
	foods repository.FoodRepository,
	groups repository.FoodGroupRepository,
	rates repository.FoodRateRepository,
	history repository.HistoryRepository,
	cache *GroupCache,
	log *zap.Logger,
) *FoodService {
	return &FoodService{
		foods:   foods,
		groups:  groups,
		rates:   rates,
		history: history,
		cache:   cache,
		log:     log,
	}
}

// FoodDetailResponse is the single-food view: tag ids swapped for names,
// the caller's own rating attached.
type FoodDetailResponse struct {
	ID                uint     `json:"id"`
	Name              string   `json:"name"`
	Nutriscore        float64  `json:"nutriscore"`
	Tags              []string `json:"tags"`
	Grade             string   `json:"grade"`
	Type              string   `json:"type"`
	Calories          float64  `json:"calories"`
	Fat               float64  `json:"fat"`
	Sugar             float64  `json:"sugar"`
	Fiber             float64  `json:"fiber"`
	Protein           float64  `json:"protein"`
	Natrium           float64  `json:"natrium"`
	Vegetable         float64  `json:"vegetable"`
	ImageURL          string   `json:"image_url"`
	ImageNutritionURL string   `json:"image_nutrition_url"`
	FoodRate          int      `json:"food_rate"`
}

type FoodListItem struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	Tags     []string `json:"tags"`
	Grade    string   `json:"grade"`
	Type     string   `json:"type"`
	ImageURL string   `json:"image_url"`
}

type FoodPage struct {
	Data       []FoodListItem `json:"data"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"totalPages"`
}

type SaveFoodInput struct {
	Name       string  `json:"name" binding:"required"`
	Nutriscore float64 `json:"nutriscore"`
	Tags       string  `json:"tags"`
	Grade      string  `json:"grade"`
	Type       string  `json:"type"`
	Calories   float64 `json:"calories"`
	Fat        float64 `json:"fat"`
	Sugar      float64 `json:"sugar"`
	Fiber      float64 `json:"fiber"`
	Protein    float64 `json:"protein"`
	Natrium    float64 `json:"natrium"`
	Vegetable  float64 `json:"vegetable"`
}

func (s *FoodService) GetFoodByID(ctx context.Context, userID uuid.UUID, foodID uint) (*FoodDetailResponse, error) {
	food, err := s.foods.FindByID(ctx, foodID)
	if err != nil {
		return nil, err
	}

	names, err := s.groupNames(ctx)
	if err != nil {
		return nil, err
	}

	rate, err := s.GetFoodRate(ctx, userID, foodID)
	if err != nil {
		return nil, err
	}

	return &FoodDetailResponse{
		ID:                food.ID,
		Name:              food.Name,
		Nutriscore:        food.Nutriscore,
		Tags:              resolveTags(food.Tags, names),
		Grade:             food.Grade,
		Type:              food.Type,
		Calories:          food.Calories,
		Fat:               food.Fat,
		Sugar:             food.Sugar,
		Fiber:             food.Fiber,
		Protein:           food.Protein,
		Natrium:           food.Natrium,
		Vegetable:         food.Vegetable,
		ImageURL:          food.ImageURL,
		ImageNutritionURL: food.ImageNutritionURL,
		FoodRate:          rate,
	}, nil
}

func (s *FoodService) GetFoods(ctx context.Context, page, limit int, name string, tags []int64) (*FoodPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	foods, total, err := s.foods.List(ctx, repository.ListFoodsParams{
		Name:   name,
		Tags:   tags,
		Offset: (page - 1) * limit,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	// One batched lookup covers every tag id on the page.
	names, err := s.groupNames(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]FoodListItem, 0, len(foods))
	for _, food := range foods {
		items = append(items, FoodListItem{
			ID:       food.ID,
			Name:     food.Name,
			Tags:     resolveTags(food.Tags, names),
			Grade:    food.Grade,
			Type:     food.Type,
			ImageURL: food.ImageURL,
		})
	}

	return &FoodPage{
		Data:       items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func (s *FoodService) UpdateFoodImage(ctx context.Context, foodID uint, imageURL string) (*models.Food, error) {
	food, err := s.foods.FindByID(ctx, foodID)
	if err != nil {
		return nil, err
	}

	food.ImageURL = imageURL
	if err := s.foods.Save(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}

// SaveFood resolves the comma-separated tag names against the FoodGroup
// table; names that match nothing are dropped, not rejected.
func (s *FoodService) SaveFood(ctx context.Context, input SaveFoodInput, userID uuid.UUID) (*models.Food, error) {
	groups, err := s.groups.All(ctx)
	if err != nil {
		return nil, err
	}

	nameToID := make(map[string]int64, len(groups))
	for _, group := range groups {
		nameToID[strings.ToLower(group.Name)] = int64(group.ID)
	}

	var tagIDs []int64
	for _, tagName := range strings.Split(input.Tags, ",") {
		if id, ok := nameToID[strings.ToLower(strings.TrimSpace(tagName))]; ok {
			tagIDs = append(tagIDs, id)
		}
	}

	grade := input.Grade
	if len(grade) > 1 {
		grade = grade[:1]
	}

	food := &models.Food{
		Name:       input.Name,
		Nutriscore: input.Nutriscore,
		Tags:       datatypes.NewJSONSlice(tagIDs),
		Grade:      grade,
		Type:       "Kemasan",
		Calories:   input.Calories,
		Fat:        input.Fat,
		Sugar:      input.Sugar,
		Fiber:      input.Fiber,
		Protein:    input.Protein,
		Natrium:    input.Natrium,
		Vegetable:  input.Vegetable,
	}

	if err := s.foods.Create(ctx, food); err != nil {
		return nil, err
	}

	if _, err := s.history.AddFoodHistory(ctx, userID, food.ID); err != nil {
		return nil, err
	}

	return food, nil
}

// GetFoodRate returns 0 when the pair has no rating; absence is not an error.
func (s *FoodService) GetFoodRate(ctx context.Context, userID uuid.UUID, foodID uint) (int, error) {
	rate, err := s.rates.Find(ctx, userID, foodID)
	if err != nil {
		return 0, err
	}
	if rate == nil {
		return 0, nil
	}
	return rate.Rate, nil
}

func (s *FoodService) SetFoodRate(ctx context.Context, userID uuid.UUID, foodID uint, rate int) (*models.FoodRate, error) {
	if rate < 1 || rate > 5 {
		return nil, apperrors.Validation("rate must be between 1 and 5")
	}

	if _, err := s.foods.FindByID(ctx, foodID); err != nil {
		return nil, err
	}

	foodRate := &models.FoodRate{UserID: userID, FoodID: foodID, Rate: rate}
	if err := s.rates.Upsert(ctx, foodRate); err != nil {
		return nil, err
	}
	return foodRate, nil
}

func (s *FoodService) AddFoodHistory(ctx context.Context, userID uuid.UUID, foodID uint) (*models.FoodHistory, error) {
	return s.history.AddFoodHistory(ctx, userID, foodID)
}

func (s *FoodService) AddScanHistory(ctx context.Context, userID uuid.UUID) (*models.ScanHistory, error) {
	return s.history.AddScanHistory(ctx, userID)
}

// groupNames loads the id -> name map, through the cache when one is wired.
func (s *FoodService) groupNames(ctx context.Context) (map[int64]string, error) {
	if names, ok := s.cache.Get(ctx); ok {
		return names, nil
	}

	groups, err := s.groups.All(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(groups))
	for _, group := range groups {
		names[int64(group.ID)] = group.Name
	}

	s.cache.Set(ctx, names)
	return names, nil
}

// resolveTags swaps tag ids for their labels in the response view only;
// ids with no matching group are omitted.
func resolveTags(tags []int64, names map[int64]string) []string {
	resolved := make([]string, 0, len(tags))
	for _, id := range tags {
		if name, ok := names[id]; ok {
			resolved = append(resolved, name)
		}
	}
	return resolved
}
