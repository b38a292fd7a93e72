package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodRate is one user's rating of one food. The composite unique index
// backs the ON CONFLICT upsert in the repository.
type FoodRate struct {
	gorm.Model
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_food_rates_user_food" json:"user_id"`
	FoodID uint      `gorm:"not null;uniqueIndex:idx_food_rates_user_food" json:"food_id"`
	Rate   int       `gorm:"not null;check:rate >= 1 AND rate <= 5" json:"rate"`
}
