package services

import (
	"context"
	"io"

	"github.com/HifricAldar/cloud-computing/apperrors"
	"github.com/HifricAldar/cloud-computing/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	analysisRewardPoints = 10
	analysisDescription  = "Analyze food"
)

// OCRGateway is what the analysis flow needs from the OCR client.
type OCRGateway interface {
	Predict(ctx context.Context, filename string, file io.Reader) (map[string]any, error)
}

type AnalysisService struct {
	ocr     OCRGateway
	points  repository.PointRepository
	history repository.HistoryRepository
	log     *zap.Logger
}

func NewAnalysisService(ocr OCRGateway, points repository.PointRepository, history repository.HistoryRepository, log *zap.Logger) *AnalysisService {
	return &AnalysisService{ocr: ocr, points: points, history: history, log: log}
}

// AnalyzeFoodNutrition forwards the upload to the OCR service. On success
// the 10-point reward and its ledger row land in one transaction; on any
// failure nothing is written and the upstream detail stays in the logs.
func (s *AnalysisService) AnalyzeFoodNutrition(ctx context.Context, userID uuid.UUID, filename string, file io.Reader) (map[string]any, error) {
	result, err := s.ocr.Predict(ctx, filename, file)
	if err != nil {
		s.log.Error("food analysis failed",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, apperrors.Upstream("failed to analyze food nutrition")
	}

	if err := s.points.Award(ctx, userID, analysisRewardPoints, analysisDescription); err != nil {
		return nil, err
	}

	if _, err := s.history.AddScanHistory(ctx, userID); err != nil {
		// The scan event is bookkeeping, not part of the point invariant.
		s.log.Warn("scan history append failed", zap.Error(err))
	}

	out := make(map[string]any, len(result)+1)
	for k, v := range result {
		out[k] = v
	}
	out["type"] = "kemasan"
	return out, nil
}
