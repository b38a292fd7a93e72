package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Otp holds the one active verification code for a user.
type Otp struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Code      string    `gorm:"size:6;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (o *Otp) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// Expired reports whether the code is no longer usable.
func (o *Otp) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
