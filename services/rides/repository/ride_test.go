package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/models"
)

func newTestRepo(t *testing.T) (*RideRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewRideRepository(&models.Config{}, sqlxDB), mock
}

func rideColumns() []string {
	return []string{"id", "driver_id", "origin", "destination", "date", "time", "seats", "price", "status", "created_at"}
}

func TestGetRideByID_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	rideID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM rides`).
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows(rideColumns()))

	_, err := repo.GetRideByID(context.Background(), rideID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOpenRides_AppliesFilters(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM rides WHERE status = \$1 AND origin ILIKE \$2 AND date = \$3 ORDER BY date ASC, time ASC`).
		WithArgs(models.RideStatusOpen, "%North%", "2026-10-01").
		WillReturnRows(sqlmock.NewRows(rideColumns()))

	rides, err := repo.ListOpenRides(context.Background(), models.RideFilter{
		Origin: "North",
		Date:   "2026-10-01",
	})
	require.NoError(t, err)
	assert.Empty(t, rides)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRideStatus_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	rideID := uuid.New()
	mock.ExpectExec(`UPDATE rides SET status`).
		WithArgs(models.RideStatusCancelled, rideID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateRideStatus(context.Background(), rideID, models.RideStatusCancelled)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRideCascade_Commits(t *testing.T) {
	repo, mock := newTestRepo(t)

	rideID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM bookings WHERE ride_id`).
		WithArgs(rideID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM messages WHERE ride_id`).
		WithArgs(rideID).
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(`DELETE FROM rides WHERE id`).
		WithArgs(rideID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteRideCascade(context.Background(), rideID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRideCascade_MissingRideRollsBack(t *testing.T) {
	repo, mock := newTestRepo(t)

	rideID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM bookings WHERE ride_id`).
		WithArgs(rideID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM messages WHERE ride_id`).
		WithArgs(rideID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM rides WHERE id`).
		WithArgs(rideID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteRideCascade(context.Background(), rideID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
