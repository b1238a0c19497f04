package models

type Mood string

const (
	MoodRelaxed   Mood = "relaxed"
	MoodEnergized Mood = "energized"
	MoodRomantic  Mood = "romantic"
)

// NoteSet is the fragrance pyramid offered for a single mood.
type NoteSet struct {
	Top    []string `json:"top"`
	Middle []string `json:"middle"`
	Base   []string `json:"base"`
}
