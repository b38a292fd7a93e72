package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/HifricAldar/cloud-computing/apperrors"
	"github.com/HifricAldar/cloud-computing/models"
	"gorm.io/gorm"
)

type foodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) Create(ctx context.Context, food *models.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) FindByID(ctx context.Context, id uint) (*models.Food, error) {
	var food models.Food
	err := r.db.WithContext(ctx).First(&food, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("food")
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) Save(ctx context.Context, food *models.Food) error {
	return r.db.WithContext(ctx).Save(food).Error
}

func (r *foodRepository) List(ctx context.Context, params ListFoodsParams) ([]models.Food, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Food{})

	if params.Name != "" {
		base = base.Where("name ILIKE ?", "%"+params.Name+"%")
	}
	if len(params.Tags) > 0 {
		// jsonb containment: every requested tag id must be present.
		encoded, err := json.Marshal(params.Tags)
		if err != nil {
			return nil, 0, err
		}
		base = base.Where("tags @> ?", string(encoded))
	}

	// Count first, under the same predicate as the page itself.
	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var foods []models.Food
	err := base.Session(&gorm.Session{}).
		Select("id", "name", "tags", "grade", "image_url", "type").
		Offset(params.Offset).
		Limit(params.Limit).
		Order("id").
		Find(&foods).Error
	if err != nil {
		return nil, 0, err
	}

	return foods, total, nil
}

type foodGroupRepository struct {
	db *gorm.DB
}

func NewFoodGroupRepository(db *gorm.DB) FoodGroupRepository {
	return &foodGroupRepository{db: db}
}

func (r *foodGroupRepository) All(ctx context.Context) ([]models.FoodGroup, error) {
	var groups []models.FoodGroup
	if err := r.db.WithContext(ctx).Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}
