package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gm-key")
	t.Setenv("SUPABASE_URL", "https://demo.supabase.co")
	t.Setenv("SUPABASE_KEY", "sb-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ProviderGemini, cfg.AI.Provider)
	assert.Equal(t, "gemini-pro", cfg.AI.Gemini.Model)
	assert.Equal(t, BackendSupabase, cfg.Store.Backend)
	assert.Equal(t, 5, cfg.Store.HistoryLimit)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadMissingGeminiKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("SUPABASE_URL", "https://demo.supabase.co")
	t.Setenv("SUPABASE_KEY", "sb-key")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoadMissingSupabaseSecrets(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gm-key")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_KEY", "sb-key")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUPABASE_URL")

	t.Setenv("SUPABASE_URL", "https://demo.supabase.co")
	t.Setenv("SUPABASE_KEY", "")

	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUPABASE_KEY")
}

func TestLoadMemoryBackendNeedsNoStorageSecrets(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gm-key")
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
}

func TestLoadGigaChatProvider(t *testing.T) {
	t.Setenv("AI_PROVIDER", "gigachat")
	t.Setenv("GIGACHAT_API_KEY", "gc-key")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("STORE_BACKEND", "memory")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ProviderGigaChat, cfg.AI.Provider)
	assert.Equal(t, "GigaChat", cfg.AI.GigaChat.Model)
	assert.Equal(t, "GIGACHAT_API_PERS", cfg.AI.GigaChat.Scope)
}

func TestLoadUnknownProvider(t *testing.T) {
	t.Setenv("AI_PROVIDER", "clippy")
	t.Setenv("STORE_BACKEND", "memory")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AI_PROVIDER")
}

func TestLoadUnknownBackend(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gm-key")
	t.Setenv("STORE_BACKEND", "carrier-pigeon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_BACKEND")
}
