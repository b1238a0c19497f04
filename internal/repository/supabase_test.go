package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"scent-matcher/internal/models"
	"scent-matcher/pkg/config"
)

func newTestSupabase(t *testing.T, handler http.HandlerFunc) *SupabaseRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewSupabaseRepository(&config.SupabaseConfig{URL: srv.URL, Key: "service-key"}, zap.NewNop())
}

func TestSupabaseSave(t *testing.T) {
	var gotMethod, gotPath, gotKey, gotAuth, gotPrefer string
	var gotRow supabaseRow

	repo := newTestSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		gotPrefer = r.Header.Get("Prefer")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRow))
		w.WriteHeader(http.StatusCreated)
	})

	createdAt := time.Date(2026, 8, 21, 9, 30, 0, 0, time.UTC)
	err := repo.Save(context.Background(), &models.Recommendation{
		ID:           uuid.New(),
		Mood:         models.MoodRelaxed,
		ProductType:  "candle",
		Name:         "Calm Breeze",
		Description:  "A soothing blend.",
		BlendFormula: "50% Lavender, 30% Sandalwood, 20% Vanilla",
		BestTime:     "Evening",
		CreatedAt:    createdAt,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/rest/v1/fragrance_recommendations", gotPath)
	assert.Equal(t, "service-key", gotKey)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "return=minimal", gotPrefer)
	assert.Equal(t, "relaxed", gotRow.Mood)
	assert.Equal(t, "candle", gotRow.ProductType)
	assert.Equal(t, "Calm Breeze", gotRow.ProductName)
	assert.Equal(t, "2026-08-21T09:30:00Z", gotRow.CreatedAt)
}

func TestSupabaseSaveFailure(t *testing.T) {
	repo := newTestSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusForbidden)
	})

	err := repo.Save(context.Background(), &models.Recommendation{Name: "Calm Breeze"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
	assert.Contains(t, err.Error(), "permission denied")
}

func TestSupabaseRecent(t *testing.T) {
	repo := newTestSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/fragrance_recommendations", r.URL.Path)
		assert.Equal(t, "product_name,mood,product_type,created_at", r.URL.Query().Get("select"))
		assert.Equal(t, "created_at.desc", r.URL.Query().Get("order"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "service-key", r.Header.Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"product_name":"Velvet Hour","mood":"romantic","product_type":"perfume blend","created_at":"2026-08-21T10:00:00+00:00"},
			{"product_name":"Calm Breeze","mood":"relaxed","product_type":"candle","created_at":"2026-08-20T21:15:30.123456"}
		]`))
	})

	entries, err := repo.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Velvet Hour", entries[0].ProductName)
	assert.Equal(t, models.MoodRomantic, entries[0].Mood)
	assert.Equal(t, 2026, entries[0].CreatedAt.Year())

	assert.Equal(t, "Calm Breeze", entries[1].ProductName)
	assert.Equal(t, 21, entries[1].CreatedAt.Minute())
}

func TestSupabaseRecentFailure(t *testing.T) {
	repo := newTestSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"JWT expired"}`, http.StatusUnauthorized)
	})

	_, err := repo.Recent(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
