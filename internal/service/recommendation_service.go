package service

import (
	"context"

	"github.com/blanklearn/marketplace-backend/internal/metrics"
	"github.com/blanklearn/marketplace-backend/internal/model"
	"github.com/blanklearn/marketplace-backend/internal/recommend"
)

// RecommendationService grounds recommendation requests on the live catalog.
type RecommendationService struct {
	pipeline *recommend.Pipeline
	catalog  *CatalogService
}

// NewRecommendationService creates a new RecommendationService.
func NewRecommendationService(pipeline *recommend.Pipeline, catalog *CatalogService) *RecommendationService {
	return &RecommendationService{pipeline: pipeline, catalog: catalog}
}

// Recommend parses the raw interests and runs the pipeline against the
// current catalog of kind. It returns recommend.ErrNoInterests before any
// catalog read or generator call when no interest remains after trimming.
func (s *RecommendationService) Recommend(ctx context.Context, kind model.RecommendationKind, req model.RecommendationRequest) (model.RecommendationResult, error) {
	interests := recommend.ParseInterests(req.Interests)
	if len(interests) == 0 {
		metrics.RecordRecommendation(string(kind), metrics.OutcomeRejected)
		return model.RecommendationResult{}, recommend.ErrNoInterests
	}

	profile := model.RecommendationProfile{
		Interests: interests,
		Age:       req.Age,
		Grade:     req.Grade,
	}
	return s.pipeline.Recommend(ctx, kind, profile, s.catalog.Snapshot(ctx, kind))
}
