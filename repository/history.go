package repository

import (
	"context"

	"github.com/HifricAldar/cloud-computing/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) AddFoodHistory(ctx context.Context, userID uuid.UUID, foodID uint) (*models.FoodHistory, error) {
	entry := models.FoodHistory{UserID: userID, FoodID: foodID}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *historyRepository) AddScanHistory(ctx context.Context, userID uuid.UUID) (*models.ScanHistory, error) {
	entry := models.ScanHistory{UserID: userID}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}
