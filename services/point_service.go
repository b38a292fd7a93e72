package services

import (
	"context"

	"github.com/HifricAldar/cloud-computing/models"
	"github.com/HifricAldar/cloud-computing/repository"
	"github.com/google/uuid"
)

type PointService struct {
	points repository.PointRepository
}

func NewPointService(points repository.PointRepository) *PointService {
	return &PointService{points: points}
}

func (s *PointService) History(ctx context.Context, userID uuid.UUID) ([]models.PointHistory, error) {
	return s.points.HistoryForUser(ctx, userID)
}

func (s *PointService) Gifts(ctx context.Context) ([]models.Gift, error) {
	return s.points.Gifts(ctx)
}
