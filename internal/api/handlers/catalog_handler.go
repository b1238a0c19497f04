package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"scent-matcher/internal/catalog"
	"scent-matcher/internal/dto"
	"scent-matcher/internal/models"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

func NewCatalogHandler(cat *catalog.Catalog, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: cat,
		logger:  logger,
	}
}

// GetCatalog godoc
// @Summary List selectable moods and product types
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Router /api/v1/catalog [get]
func (h *CatalogHandler) GetCatalog(c *fiber.Ctx) error {
	moods := h.catalog.Moods()
	names := make([]string, 0, len(moods))
	for _, mood := range moods {
		names = append(names, string(mood))
	}

	return c.JSON(dto.CatalogResponse{
		Moods:        names,
		ProductTypes: catalog.ProductTypes(),
	})
}

// GetNotes godoc
// @Summary Fragrance notes for one mood
// @Tags catalog
// @Produce json
// @Param mood path string true "Mood name"
// @Success 200 {object} dto.NotesResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/moods/{mood}/notes [get]
func (h *CatalogHandler) GetNotes(c *fiber.Ctx) error {
	mood := models.Mood(c.Params("mood"))
	notes, err := h.catalog.NotesFor(mood)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("Unknown mood %q", mood),
		})
	}
	return c.JSON(notesResponse(notes))
}
