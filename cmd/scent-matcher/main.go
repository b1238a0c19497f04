package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"scent-matcher/internal/api"
	"scent-matcher/internal/api/handlers"
	"scent-matcher/internal/catalog"
	"scent-matcher/internal/llm"
	"scent-matcher/internal/repository"
	"scent-matcher/internal/service"
	"scent-matcher/pkg/config"
	"scent-matcher/pkg/logger"
	"scent-matcher/pkg/postgres"

	"go.uber.org/zap"
)

// @title Scent Matcher API
// @version 1.0
// @description AI-powered fragrance product recommendations by mood

// @contact.name API Support
// @contact.email support@scent-matcher.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Scent Matcher service")

	ctx := context.Background()

	// The storage handle is built once here and shared for the process
	// lifetime; nothing else constructs store clients.
	store, cleanup, err := newStore(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer cleanup()

	client, closeClient, err := newLLMClient(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM client", zap.Error(err))
	}
	defer closeClient()

	noteCatalog := catalog.New()
	recService := service.NewRecommendationService(noteCatalog, client, store, appLogger)

	recHandler := handlers.NewRecommendationHandler(recService, noteCatalog, cfg.Store.HistoryLimit, appLogger)
	catHandler := handlers.NewCatalogHandler(noteCatalog, appLogger)

	app := api.SetupRouter(recHandler, catHandler, &cfg.Server, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

func newStore(ctx context.Context, cfg *config.Config, appLogger *zap.Logger) (repository.RecommendationStore, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendSupabase:
		appLogger.Info("Using Supabase storage backend")
		return repository.NewSupabaseRepository(&cfg.Store.Supabase, appLogger), func() {}, nil
	case config.BackendPostgres:
		db, err := postgres.NewPool(ctx, &cfg.Store.Database, appLogger)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewPostgresRepository(db, appLogger)
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		appLogger.Info("Using Postgres storage backend")
		return repo, db.Close, nil
	case config.BackendMemory:
		appLogger.Warn("Using in-memory storage backend, history will not survive restarts")
		return repository.NewMemoryRepository(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

func newLLMClient(ctx context.Context, cfg *config.Config, appLogger *zap.Logger) (llm.Client, func(), error) {
	switch cfg.AI.Provider {
	case config.ProviderGemini:
		appLogger.Info("Using Gemini provider", zap.String("model", cfg.AI.Gemini.Model))
		return llm.NewGeminiClient(&cfg.AI.Gemini, cfg.AI.Timeout, appLogger), func() {}, nil
	case config.ProviderGigaChat:
		client, err := llm.NewGigaChatClient(ctx, &cfg.AI.GigaChat, appLogger)
		if err != nil {
			return nil, nil, err
		}
		appLogger.Info("Using GigaChat provider", zap.String("model", cfg.AI.GigaChat.Model))
		return client, func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown AI provider %q", cfg.AI.Provider)
	}
}
