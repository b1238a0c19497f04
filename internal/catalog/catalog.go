package catalog

import (
	"errors"
	"fmt"

	"scent-matcher/internal/models"
)

var ErrUnknownMood = errors.New("unknown mood")

// Catalog is the fixed mood-to-notes table every recommendation starts from.
type Catalog struct {
	notes map[models.Mood]models.NoteSet
}

func New() *Catalog {
	return &Catalog{
		notes: map[models.Mood]models.NoteSet{
			models.MoodRelaxed: {
				Top:    []string{"Lavender", "Chamomile", "Bergamot", "Sweet Orange"},
				Middle: []string{"Ylang Ylang", "Rose", "Jasmine", "Neroli"},
				Base:   []string{"Sandalwood", "Vanilla", "Cedarwood", "Frankincense"},
			},
			models.MoodEnergized: {
				Top:    []string{"Peppermint", "Eucalyptus", "Lemon", "Grapefruit"},
				Middle: []string{"Rosemary", "Basil", "Ginger", "Pine"},
				Base:   []string{"Vetiver", "Patchouli", "Amber", "Musk"},
			},
			models.MoodRomantic: {
				Top:    []string{"Rose", "Peony", "Litchi", "Blackcurrant"},
				Middle: []string{"Jasmine", "Tuberose", "Magnolia", "Iris"},
				Base:   []string{"Musk", "Amber", "Patchouli", "Vanilla"},
			},
		},
	}
}

// NotesFor returns a copy of the note set, so callers cannot mutate the table.
func (c *Catalog) NotesFor(mood models.Mood) (models.NoteSet, error) {
	set, ok := c.notes[mood]
	if !ok {
		return models.NoteSet{}, fmt.Errorf("%w: %q", ErrUnknownMood, mood)
	}
	return models.NoteSet{
		Top:    append([]string(nil), set.Top...),
		Middle: append([]string(nil), set.Middle...),
		Base:   append([]string(nil), set.Base...),
	}, nil
}

// Moods lists the selectable moods in presentation order.
func (c *Catalog) Moods() []models.Mood {
	return []models.Mood{models.MoodRelaxed, models.MoodEnergized, models.MoodRomantic}
}

// ProductTypes lists the product choices offered alongside the moods.
func ProductTypes() []string {
	return []string{"candle", "body butter", "perfume blend"}
}
