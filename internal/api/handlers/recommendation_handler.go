package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"scent-matcher/internal/catalog"
	"scent-matcher/internal/dto"
	"scent-matcher/internal/llm"
	"scent-matcher/internal/models"
	"scent-matcher/internal/service"
)

const maxHistoryLimit = 50

type RecommendationHandler struct {
	recService   *service.RecommendationService
	catalog      *catalog.Catalog
	historyLimit int
	logger       *zap.Logger
}

func NewRecommendationHandler(
	recService *service.RecommendationService,
	cat *catalog.Catalog,
	historyLimit int,
	logger *zap.Logger,
) *RecommendationHandler {
	return &RecommendationHandler{
		recService:   recService,
		catalog:      cat,
		historyLimit: historyLimit,
		logger:       logger,
	}
}

// Generate godoc
// @Summary Generate a fragrance product recommendation
// @Description Asks the model for a product suggestion matching the mood and product type, then saves it best-effort. A failed save still returns the recommendation with saved=false.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body dto.GenerateRequest true "Mood and product type"
// @Success 200 {object} dto.GenerateResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/recommendations [post]
func (h *RecommendationHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	req.ProductType = strings.TrimSpace(req.ProductType)
	if req.Mood == "" || req.ProductType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Mood and product type are required",
		})
	}

	mood := models.Mood(req.Mood)
	rec, err := h.recService.Generate(c.Context(), mood, req.ProductType)
	if err != nil {
		return h.generateError(c, req.Mood, err)
	}

	saved := true
	if err := h.recService.Save(c.Context(), rec); err != nil {
		saved = false
	}

	notes, _ := h.catalog.NotesFor(mood)

	return c.JSON(dto.GenerateResponse{
		Recommendation: recommendationResponse(rec),
		Notes:          notesResponse(notes),
		Saved:          saved,
	})
}

func (h *RecommendationHandler) generateError(c *fiber.Ctx, mood string, err error) error {
	var statusErr *llm.StatusError
	switch {
	case errors.Is(err, catalog.ErrUnknownMood):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Unknown mood %q", mood),
		})
	case errors.As(err, &statusErr):
		h.logger.Error("Model endpoint rejected the request", zap.Int("status", statusErr.Code))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": fmt.Sprintf("The recommendation service returned status %d", statusErr.Code),
		})
	case errors.Is(err, service.ErrMalformedResponse):
		h.logger.Error("Model reply was not parsable", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "The model reply did not contain a usable recommendation",
		})
	case errors.Is(err, service.ErrIncompleteResponse):
		h.logger.Error("Model reply was incomplete", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "The model reply was missing required fields",
		})
	default:
		h.logger.Error("Failed to generate recommendation", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to reach the recommendation service",
		})
	}
}

// Recent godoc
// @Summary List recent recommendations
// @Description Returns the newest saved recommendations. When history cannot be read the list is empty and unavailable is true.
// @Tags recommendations
// @Produce json
// @Param limit query int false "Maximum entries" default(5)
// @Success 200 {object} dto.HistoryResponse
// @Router /api/v1/recommendations/recent [get]
func (h *RecommendationHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", h.historyLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	entries, available := h.recService.History(c.Context(), limit)

	items := make([]dto.HistoryItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, dto.HistoryItem{
			ProductName: entry.ProductName,
			Mood:        string(entry.Mood),
			ProductType: entry.ProductType,
			CreatedAt:   entry.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(dto.HistoryResponse{
		Items:       items,
		Unavailable: !available,
	})
}

// Export godoc
// @Summary Download a recommendation as a JSON file
// @Description Echoes the posted recommendation as an attachment named after the product, spaces replaced with underscores.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body dto.RecommendationResponse true "Recommendation to download"
// @Success 200 {object} dto.RecommendationResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/recommendations/export [post]
func (h *RecommendationHandler) Export(c *fiber.Ctx) error {
	var req dto.RecommendationResponse
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	payload, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		h.logger.Error("Failed to marshal export payload", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build download",
		})
	}

	filename := strings.ReplaceAll(req.Name, " ", "_") + ".json"
	c.Attachment(filename)
	return c.Send(payload)
}

func recommendationResponse(rec *models.Recommendation) dto.RecommendationResponse {
	return dto.RecommendationResponse{
		Mood:         string(rec.Mood),
		ProductType:  rec.ProductType,
		Name:         rec.Name,
		Description:  rec.Description,
		BlendFormula: rec.BlendFormula,
		BestTime:     rec.BestTime,
		CreatedAt:    rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func notesResponse(notes models.NoteSet) dto.NotesResponse {
	return dto.NotesResponse{
		Top:    notes.Top,
		Middle: notes.Middle,
		Base:   notes.Base,
	}
}
