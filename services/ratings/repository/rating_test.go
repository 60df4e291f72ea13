package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

func newTestRepo(t *testing.T) (*RatingRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewRatingRepository(&models.Config{}, sqlxDB), mock
}

func TestAverageStars_NoRatings(t *testing.T) {
	repo, mock := newTestRepo(t)

	rateeID := uuid.New()
	mock.ExpectQuery(`SELECT COALESCE\(AVG\(stars\), 0\) FROM ratings`).
		WithArgs(rateeID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))

	avg, err := repo.AverageStars(context.Background(), rateeID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAverageStars_Mean(t *testing.T) {
	repo, mock := newTestRepo(t)

	rateeID := uuid.New()
	mock.ExpectQuery(`SELECT COALESCE\(AVG\(stars\), 0\) FROM ratings`).
		WithArgs(rateeID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(4.0))

	avg, err := repo.AverageStars(context.Background(), rateeID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, avg)
	assert.NoError(t, mock.ExpectationsWereMet())
}
