package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"scent-matcher/internal/models"
	"scent-matcher/pkg/config"
)

// SupabaseRepository stores records through the Supabase REST surface.
// The service key authenticates every call and never appears in logs.
type SupabaseRepository struct {
	baseURL    string
	key        string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewSupabaseRepository(cfg *config.SupabaseConfig, logger *zap.Logger) *SupabaseRepository {
	return &SupabaseRepository{
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		key:        cfg.Key,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

type supabaseRow struct {
	Mood         string `json:"mood"`
	ProductType  string `json:"product_type"`
	ProductName  string `json:"product_name"`
	Description  string `json:"description,omitempty"`
	BlendFormula string `json:"blend_formula,omitempty"`
	BestTime     string `json:"best_time,omitempty"`
	CreatedAt    string `json:"created_at"`
}

func (r *SupabaseRepository) endpoint() string {
	return r.baseURL + "/rest/v1/" + tableName
}

func (r *SupabaseRepository) setHeaders(req *http.Request) {
	req.Header.Set("apikey", r.key)
	req.Header.Set("Authorization", "Bearer "+r.key)
	req.Header.Set("Content-Type", "application/json")
}

func (r *SupabaseRepository) Save(ctx context.Context, rec *models.Recommendation) error {
	row := supabaseRow{
		Mood:         string(rec.Mood),
		ProductType:  rec.ProductType,
		ProductName:  rec.Name,
		Description:  rec.Description,
		BlendFormula: rec.BlendFormula,
		BestTime:     rec.BestTime,
		CreatedAt:    rec.CreatedAt.UTC().Format(time.RFC3339),
	}

	payload, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to marshal row: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	r.setHeaders(req)
	req.Header.Set("Prefer", "return=minimal")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to insert row: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("insert failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

func (r *SupabaseRepository) Recent(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	q := req.URL.Query()
	q.Set("select", "product_name,mood,product_type,created_at")
	q.Set("order", "created_at.desc")
	q.Set("limit", strconv.Itoa(limit))
	req.URL.RawQuery = q.Encode()
	r.setHeaders(req)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query rows: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("query failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var rows []supabaseRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode rows: %w", err)
	}

	entries := make([]models.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		createdAt, err := time.Parse(time.RFC3339, row.CreatedAt)
		if err != nil {
			// timestamp columns come back with microseconds and no zone
			createdAt, _ = time.Parse("2006-01-02T15:04:05.999999", row.CreatedAt)
		}
		entries = append(entries, models.HistoryEntry{
			ProductName: row.ProductName,
			Mood:        models.Mood(row.Mood),
			ProductType: row.ProductType,
			CreatedAt:   createdAt,
		})
	}
	return entries, nil
}
