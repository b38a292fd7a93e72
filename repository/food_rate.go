package repository

import (
	"context"
	"errors"

	"github.com/HifricAldar/cloud-computing/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type foodRateRepository struct {
	db *gorm.DB
}

func NewFoodRateRepository(db *gorm.DB) FoodRateRepository {
	return &foodRateRepository{db: db}
}

func (r *foodRateRepository) Find(ctx context.Context, userID uuid.UUID, foodID uint) (*models.FoodRate, error) {
	var rate models.FoodRate
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND food_id = ?", userID, foodID).
		First(&rate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// Upsert relies on the unique (user_id, food_id) index so two concurrent
// ratings of the same pair cannot produce a lost update or a duplicate row.
func (r *foodRateRepository) Upsert(ctx context.Context, rate *models.FoodRate) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "food_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rate", "updated_at"}),
		}).
		Create(rate).Error
}
