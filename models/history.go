package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodHistory records a user viewing or saving a food. Append-only.
type FoodHistory struct {
	gorm.Model
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	FoodID uint      `gorm:"not null;index" json:"food_id"`
}

// ScanHistory records one scan attempt, food or not. Append-only.
type ScanHistory struct {
	gorm.Model
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
}
