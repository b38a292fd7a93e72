package repository

import (
	"context"
	"errors"

	"github.com/HifricAldar/cloud-computing/apperrors"
	"github.com/HifricAldar/cloud-computing/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type otpRepository struct {
	db *gorm.DB
}

func NewOtpRepository(db *gorm.DB) OtpRepository {
	return &otpRepository{db: db}
}

// Replace keeps the one-active-code-per-user invariant: the old row, if
// any, goes away in the same transaction that stores the new one.
func (r *otpRepository) Replace(ctx context.Context, otp *models.Otp) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", otp.UserID).Delete(&models.Otp{}).Error; err != nil {
			return err
		}
		return tx.Create(otp).Error
	})
}

func (r *otpRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Otp, error) {
	var otp models.Otp
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&otp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("otp")
	}
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *otpRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Otp{}).Error
}
