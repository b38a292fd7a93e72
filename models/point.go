package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PointHistory is the append-only point ledger. The sum of a user's
// deltas reconciles with User.Point; both are written in one transaction.
type PointHistory struct {
	gorm.Model
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Point       int       `gorm:"not null" json:"point"`
	Description string    `json:"description"`
}

// Gift is a reward redeemable with points.
type Gift struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Point    int    `gorm:"not null" json:"point"`
	Stock    int    `gorm:"not null;default:0" json:"stock"`
	ImageURL string `gorm:"column:image_url" json:"image_url"`
}
