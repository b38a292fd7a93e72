package repository

import (
	"context"

	"github.com/HifricAldar/cloud-computing/apperrors"
	"github.com/HifricAldar/cloud-computing/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type pointRepository struct {
	db *gorm.DB
}

func NewPointRepository(db *gorm.DB) PointRepository {
	return &pointRepository{db: db}
}

// Award updates the cached balance and appends the ledger row in a single
// transaction, so User.Point and the PointHistory sum cannot drift apart.
func (r *pointRepository) Award(ctx context.Context, userID uuid.UUID, delta int, description string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("point", gorm.Expr("point + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.NotFound("user")
		}
		return tx.Create(&models.PointHistory{
			UserID:      userID,
			Point:       delta,
			Description: description,
		}).Error
	})
}

func (r *pointRepository) HistoryForUser(ctx context.Context, userID uuid.UUID) ([]models.PointHistory, error) {
	var entries []models.PointHistory
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *pointRepository) Gifts(ctx context.Context) ([]models.Gift, error) {
	var gifts []models.Gift
	if err := r.db.WithContext(ctx).Order("point").Find(&gifts).Error; err != nil {
		return nil, err
	}
	return gifts, nil
}
