package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scent-matcher/internal/catalog"
	"scent-matcher/internal/models"
)

func TestBuildPromptContents(t *testing.T) {
	notes, err := catalog.New().NotesFor(models.MoodRelaxed)
	require.NoError(t, err)

	prompt := BuildPrompt(models.MoodRelaxed, notes, "candle")

	assert.Contains(t, prompt, "Based on a relaxed mood")
	assert.Contains(t, prompt, "Top notes: Lavender, Chamomile, Bergamot, Sweet Orange")
	assert.Contains(t, prompt, "Middle notes: Ylang Ylang, Rose, Jasmine, Neroli")
	assert.Contains(t, prompt, "Base notes: Sandalwood, Vanilla, Cedarwood, Frankincense")
	assert.Contains(t, prompt, "creative candle recommendation")
	assert.Contains(t, prompt, "Respond ONLY with valid JSON")
	for _, key := range []string{`"name"`, `"description"`, `"blend_formula"`, `"best_time"`} {
		assert.Contains(t, prompt, key)
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	notes, err := catalog.New().NotesFor(models.MoodRomantic)
	require.NoError(t, err)

	first := BuildPrompt(models.MoodRomantic, notes, "perfume blend")
	second := BuildPrompt(models.MoodRomantic, notes, "perfume blend")
	assert.Equal(t, first, second)
}
