package api

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	"scent-matcher/docs"
	"scent-matcher/internal/api/handlers"
	"scent-matcher/pkg/config"
)

func SetupRouter(
	recHandler *handlers.RecommendationHandler,
	catHandler *handlers.CatalogHandler,
	cfg *config.ServerConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	// Swagger - импорт docs пакета регистрирует документацию через init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	webStaticPath := findWebStaticPath(appLogger)
	if webStaticPath != "" {
		app.Static("/static", webStaticPath)
	} else {
		appLogger.Warn("Web static directory not found, the UI will not be served")
	}

	// Serve the single-page UI at the root
	app.Get("/", func(c *fiber.Ctx) error {
		if webStaticPath == "" {
			return c.Status(fiber.StatusNotFound).SendString("Web interface not found. Please ensure web/static/index.html exists.")
		}
		return c.SendFile(filepath.Join(webStaticPath, "index.html"))
	})

	// API routes
	api := app.Group("/api/v1")
	api.Get("/catalog", catHandler.GetCatalog)
	api.Get("/moods/:mood/notes", catHandler.GetNotes)

	recommendations := api.Group("/recommendations")
	recommendations.Post("", recHandler.Generate)
	recommendations.Get("/recent", recHandler.Recent)
	recommendations.Post("/export", recHandler.Export)

	return app
}

// findWebStaticPath locates the web/static directory relative to the
// working directory.
func findWebStaticPath(logger *zap.Logger) string {
	paths := []string{
		"./web/static",
		"web/static",
		"../web/static",
		"../../web/static",
	}

	for _, path := range paths {
		if fileExists(filepath.Join(path, "index.html")) {
			logger.Info("Serving static files", zap.String("path", path))
			return path
		}
	}
	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
