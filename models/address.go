package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Address is the user's single shipping/profile address.
type Address struct {
	gorm.Model
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	Province   string    `json:"province"`
	PostalCode string    `gorm:"size:10" json:"postal_code"`
}
