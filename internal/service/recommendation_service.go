package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"scent-matcher/internal/catalog"
	"scent-matcher/internal/llm"
	"scent-matcher/internal/models"
	"scent-matcher/internal/repository"
)

type RecommendationService struct {
	catalog *catalog.Catalog
	client  llm.Client
	store   repository.RecommendationStore
	logger  *zap.Logger
}

func NewRecommendationService(
	cat *catalog.Catalog,
	client llm.Client,
	store repository.RecommendationStore,
	logger *zap.Logger,
) *RecommendationService {
	return &RecommendationService{
		catalog: cat,
		client:  client,
		store:   store,
		logger:  logger,
	}
}

// Generate asks the model for one product suggestion and returns it as a
// fully populated record. Nothing is persisted here.
func (s *RecommendationService) Generate(ctx context.Context, mood models.Mood, productType string) (*models.Recommendation, error) {
	notes, err := s.catalog.NotesFor(mood)
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(mood, notes, productType)

	reply, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate recommendation: %w", err)
	}

	candidate, err := extractJSONObject(reply)
	if err != nil {
		return nil, err
	}

	fields, err := parseRecommendationFields(candidate)
	if err != nil {
		return nil, err
	}

	rec := &models.Recommendation{
		ID:           uuid.New(),
		Mood:         mood,
		ProductType:  productType,
		Name:         fields["name"],
		Description:  fields["description"],
		BlendFormula: fields["blend_formula"],
		BestTime:     fields["best_time"],
		CreatedAt:    time.Now().UTC(),
	}

	s.logger.Info("Recommendation generated",
		zap.String("mood", string(mood)),
		zap.String("product_type", productType),
		zap.String("product_name", rec.Name),
	)

	return rec, nil
}

// Save persists the record. Callers treat a failure as non-fatal: the
// recommendation they already hold stays valid either way.
func (s *RecommendationService) Save(ctx context.Context, rec *models.Recommendation) error {
	if err := s.store.Save(ctx, rec); err != nil {
		s.logger.Error("Failed to save recommendation",
			zap.String("product_name", rec.Name),
			zap.Error(err),
		)
		return fmt.Errorf("failed to save recommendation: %w", err)
	}
	return nil
}

// History returns up to limit recent entries, newest first. A backend
// failure degrades to an empty list with available=false so the panel can
// fall back to its empty state.
func (s *RecommendationService) History(ctx context.Context, limit int) ([]models.HistoryEntry, bool) {
	entries, err := s.store.Recent(ctx, limit)
	if err != nil {
		s.logger.Warn("Failed to load recommendation history", zap.Error(err))
		return []models.HistoryEntry{}, false
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	return entries, true
}
