package models

import (
	"time"

	"github.com/google/uuid"
)

type Recommendation struct {
	ID           uuid.UUID `db:"id"`
	Mood         Mood      `db:"mood"`
	ProductType  string    `db:"product_type"`
	Name         string    `db:"product_name"`
	Description  string    `db:"description"`
	BlendFormula string    `db:"blend_formula"` // проценты нот, свободный текст
	BestTime     string    `db:"best_time"`
	CreatedAt    time.Time `db:"created_at"`
}

// HistoryEntry is the short projection listed in the recent panel.
type HistoryEntry struct {
	ProductName string    `db:"product_name"`
	Mood        Mood      `db:"mood"`
	ProductType string    `db:"product_type"`
	CreatedAt   time.Time `db:"created_at"`
}
