package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"scent-matcher/internal/models"
)

// Querier is the slice of pgxpool.Pool the store actually uses.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type PostgresRepository struct {
	db     Querier
	logger *zap.Logger
}

func NewPostgresRepository(db Querier, logger *zap.Logger) *PostgresRepository {
	return &PostgresRepository{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the recommendations table when it does not exist yet.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id UUID PRIMARY KEY,
		mood TEXT NOT NULL,
		product_type TEXT NOT NULL,
		product_name TEXT NOT NULL,
		description TEXT NOT NULL,
		blend_formula TEXT NOT NULL,
		best_time TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`, tableName)

	if _, err := r.db.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create %s table: %w", tableName, err)
	}
	return nil
}

func (r *PostgresRepository) Save(ctx context.Context, rec *models.Recommendation) error {
	query := squirrel.Insert(tableName).
		Columns("id", "mood", "product_type", "product_name", "description", "blend_formula", "best_time", "created_at").
		Values(rec.ID, rec.Mood, rec.ProductType, rec.Name, rec.Description, rec.BlendFormula, rec.BestTime, rec.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	query := squirrel.Select("product_name", "mood", "product_type", "created_at").
		From(tableName).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.HistoryEntry
	for rows.Next() {
		var entry models.HistoryEntry
		var mood string
		if err := rows.Scan(&entry.ProductName, &mood, &entry.ProductType, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entry.Mood = models.Mood(mood)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
