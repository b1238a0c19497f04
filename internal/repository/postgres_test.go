package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"scent-matcher/internal/models"
)

func newPostgresMock(t *testing.T) (pgxmock.PgxPoolIface, *PostgresRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewPostgresRepository(mock, zap.NewNop())
}

func TestPostgresSave(t *testing.T) {
	mock, repo := newPostgresMock(t)

	rec := &models.Recommendation{
		ID:           uuid.New(),
		Mood:         models.MoodRelaxed,
		ProductType:  "candle",
		Name:         "Calm Breeze",
		Description:  "A soothing blend.",
		BlendFormula: "50% Lavender, 30% Sandalwood, 20% Vanilla",
		BestTime:     "Evening",
		CreatedAt:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO fragrance_recommendations").
		WithArgs(rec.ID, rec.Mood, rec.ProductType, rec.Name, rec.Description, rec.BlendFormula, rec.BestTime, rec.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Save(context.Background(), rec))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSaveError(t *testing.T) {
	mock, repo := newPostgresMock(t)

	mock.ExpectExec("INSERT INTO fragrance_recommendations").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection refused"))

	err := repo.Save(context.Background(), &models.Recommendation{ID: uuid.New()})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRecent(t *testing.T) {
	mock, repo := newPostgresMock(t)

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{"product_name", "mood", "product_type", "created_at"}).
		AddRow("Velvet Hour", "romantic", "perfume blend", now).
		AddRow("Calm Breeze", "relaxed", "candle", now.Add(-time.Hour))

	mock.ExpectQuery("SELECT product_name, mood, product_type, created_at FROM fragrance_recommendations ORDER BY created_at DESC LIMIT 5").
		WillReturnRows(rows)

	entries, err := repo.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Velvet Hour", entries[0].ProductName)
	assert.Equal(t, models.MoodRomantic, entries[0].Mood)
	assert.Equal(t, "perfume blend", entries[0].ProductType)
	assert.Equal(t, "Calm Breeze", entries[1].ProductName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRecentQueryError(t *testing.T) {
	mock, repo := newPostgresMock(t)

	mock.ExpectQuery("SELECT product_name, mood, product_type, created_at FROM fragrance_recommendations").
		WillReturnError(errors.New("boom"))

	_, err := repo.Recent(context.Background(), 5)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresEnsureSchema(t *testing.T) {
	mock, repo := newPostgresMock(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS fragrance_recommendations").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
