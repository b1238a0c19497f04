package repository

import (
	"context"
	"sort"
	"sync"

	"scent-matcher/internal/models"
)

// MemoryRepository keeps records in process memory. It backs the tests and
// credential-free local runs.
type MemoryRepository struct {
	mu      sync.Mutex
	records []models.Recommendation
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Save(_ context.Context, rec *models.Recommendation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *rec)
	return nil
}

func (r *MemoryRepository) Recent(_ context.Context, limit int) ([]models.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sorted := make([]models.Recommendation, len(r.records))
	copy(sorted, r.records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if limit < 0 {
		limit = 0
	}
	if limit > len(sorted) {
		limit = len(sorted)
	}

	entries := make([]models.HistoryEntry, 0, limit)
	for _, rec := range sorted[:limit] {
		entries = append(entries, models.HistoryEntry{
			ProductName: rec.Name,
			Mood:        rec.Mood,
			ProductType: rec.ProductType,
			CreatedAt:   rec.CreatedAt,
		})
	}
	return entries, nil
}
