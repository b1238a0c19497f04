package repository

import (
	"context"

	"scent-matcher/internal/models"
)

// tableName is the single table every backend writes to.
const tableName = "fragrance_recommendations"

// RecommendationStore is the persistence seam for generated recommendations.
type RecommendationStore interface {
	// Save inserts one record. No retries, no rollback: the caller decides
	// how much a failure matters.
	Save(ctx context.Context, rec *models.Recommendation) error
	// Recent returns up to limit entries ordered newest first.
	Recent(ctx context.Context, limit int) ([]models.HistoryEntry, error)
}
