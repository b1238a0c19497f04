package main

import (
	"context"
	"log"
	"time"

	"scent-matcher/internal/models"
	"scent-matcher/internal/repository"
	"scent-matcher/pkg/config"
	"scent-matcher/pkg/logger"
	"scent-matcher/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Seeds the fragrance_recommendations table with a few sample rows so the
// history panel has content on a fresh database. Rows are only inserted
// when the table is empty.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Store.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repo := repository.NewPostgresRepository(db, appLogger)
	if err := repo.EnsureSchema(ctx); err != nil {
		appLogger.Fatal("Failed to create schema", zap.Error(err))
	}

	existing, err := repo.Recent(ctx, 1)
	if err != nil {
		appLogger.Fatal("Failed to check existing rows", zap.Error(err))
	}
	if len(existing) > 0 {
		appLogger.Info("Table already has data, skipping seed")
		return
	}

	now := time.Now().UTC()
	samples := []models.Recommendation{
		{
			ID:           uuid.New(),
			Mood:         models.MoodRelaxed,
			ProductType:  "candle",
			Name:         "Calm Breeze",
			Description:  "A soothing lavender and sandalwood candle that settles the evening down.",
			BlendFormula: "50% Lavender, 30% Sandalwood, 20% Vanilla",
			BestTime:     "Evening",
			CreatedAt:    now.Add(-2 * time.Hour),
		},
		{
			ID:           uuid.New(),
			Mood:         models.MoodEnergized,
			ProductType:  "body butter",
			Name:         "Morning Spark",
			Description:  "Zesty citrus and peppermint to kick the day into gear.",
			BlendFormula: "40% Lemon, 35% Peppermint, 25% Vetiver",
			BestTime:     "Morning",
			CreatedAt:    now.Add(-time.Hour),
		},
		{
			ID:           uuid.New(),
			Mood:         models.MoodRomantic,
			ProductType:  "perfume blend",
			Name:         "Velvet Hour",
			Description:  "Rose and musk wrapped in warm amber for a night out.",
			BlendFormula: "45% Rose, 30% Musk, 25% Amber",
			BestTime:     "Night",
			CreatedAt:    now,
		},
	}

	for _, rec := range samples {
		if err := repo.Save(ctx, &rec); err != nil {
			appLogger.Fatal("Failed to insert sample row",
				zap.String("product_name", rec.Name),
				zap.Error(err),
			)
		}
		appLogger.Info("Seeded recommendation", zap.String("product_name", rec.Name))
	}

	appLogger.Info("Seeding complete", zap.Int("rows", len(samples)))
}
