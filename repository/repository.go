package repository

import (
	"context"

	"github.com/HifricAldar/cloud-computing/models"
	"github.com/google/uuid"
)

// Repositories translate gorm.ErrRecordNotFound into apperrors.ErrNotFound
// so services never import gorm.

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
}

type OtpRepository interface {
	// Replace removes any existing code for the user and stores the new one.
	Replace(ctx context.Context, otp *models.Otp) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Otp, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ListFoodsParams filters are conjunctive: name is a case-insensitive
// substring match, tags is jsonb containment of all requested ids.
type ListFoodsParams struct {
	Name   string
	Tags   []int64
	Offset int
	Limit  int
}

type FoodRepository interface {
	Create(ctx context.Context, food *models.Food) error
	FindByID(ctx context.Context, id uint) (*models.Food, error)
	Save(ctx context.Context, food *models.Food) error
	// List returns one page plus the total count under the same predicate.
	List(ctx context.Context, params ListFoodsParams) ([]models.Food, int64, error)
}

type FoodGroupRepository interface {
	All(ctx context.Context) ([]models.FoodGroup, error)
}

type FoodRateRepository interface {
	// Find returns (nil, nil) when the pair has no rating yet.
	Find(ctx context.Context, userID uuid.UUID, foodID uint) (*models.FoodRate, error)
	// Upsert atomically creates or updates the (user, food) rating.
	Upsert(ctx context.Context, rate *models.FoodRate) error
}

type HistoryRepository interface {
	AddFoodHistory(ctx context.Context, userID uuid.UUID, foodID uint) (*models.FoodHistory, error)
	AddScanHistory(ctx context.Context, userID uuid.UUID) (*models.ScanHistory, error)
}

type PointRepository interface {
	// Award increments the user's balance and appends the ledger row in
	// one transaction.
	Award(ctx context.Context, userID uuid.UUID, delta int, description string) error
	HistoryForUser(ctx context.Context, userID uuid.UUID) ([]models.PointHistory, error)
	Gifts(ctx context.Context) ([]models.Gift, error)
}
