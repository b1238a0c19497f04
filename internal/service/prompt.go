package service

import (
	"fmt"
	"strings"

	"scent-matcher/internal/models"
)

const promptTemplate = `Based on a %s mood and these fragrance notes:
Top notes: %s
Middle notes: %s
Base notes: %s

Generate a creative %s recommendation. Include:
1. A unique, marketable product name
2. A 2-3 sentence description highlighting the mood benefits
3. The perfect blend formula (percentages of each note)
4. Best time of day to use it

Respond ONLY with valid JSON in this exact format:
{
    "name": "product name",
    "description": "description",
    "blend_formula": "blend formula",
    "best_time": "best time"
}`

// BuildPrompt renders the model prompt for one mood and product choice.
// The same inputs always yield the same prompt.
func BuildPrompt(mood models.Mood, notes models.NoteSet, productType string) string {
	return fmt.Sprintf(promptTemplate,
		mood,
		strings.Join(notes.Top, ", "),
		strings.Join(notes.Middle, ", "),
		strings.Join(notes.Base, ", "),
		productType,
	)
}
