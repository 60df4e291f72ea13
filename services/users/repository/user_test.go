package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/models"
)

func newTestRepo(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewUserRepository(&models.Config{}, sqlxDB), mock
}

func userRows(user *models.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "email", "phone", "student_id", "role", "verified", "password_hash", "rating_avg", "created_at",
	}).AddRow(
		user.ID, user.Name, user.Email, user.Phone, user.StudentID,
		user.Role, user.Verified, user.PasswordHash, user.RatingAvg, user.CreatedAt,
	)
}

func TestCreateUser_AssignsIDAndTimestamp(t *testing.T) {
	repo, mock := newTestRepo(t)

	user := &models.User{
		Name:         "Grace",
		Email:        "grace@campus.edu",
		Phone:        "555-0101",
		StudentID:    "S-1042",
		Role:         models.RoleMember,
		PasswordHash: "$2a$10$hash",
	}

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(sqlmock.AnyArg(), user.Name, user.Email, user.Phone, user.StudentID,
			user.Role, user.Verified, user.PasswordHash, user.RatingAvg, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail_Found(t *testing.T) {
	repo, mock := newTestRepo(t)

	user := &models.User{
		ID:        uuid.New(),
		Name:      "Grace",
		Email:     "grace@campus.edu",
		Role:      models.RoleMember,
		Verified:  true,
		RatingAvg: 4.5,
		CreatedAt: time.Now(),
	}

	mock.ExpectQuery(`SELECT .+ FROM users WHERE email = \$1`).
		WithArgs(user.Email).
		WillReturnRows(userRows(user))

	got, err := repo.GetUserByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Name, got.Name)
	assert.True(t, got.Verified)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	id := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetUserByID(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetVerified_UnknownUser(t *testing.T) {
	repo, mock := newTestRepo(t)

	id := uuid.New()
	mock.ExpectExec(`UPDATE users SET verified = \$1 WHERE id = \$2`).
		WithArgs(true, id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetVerified(context.Background(), id, true)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRatingAvg(t *testing.T) {
	repo, mock := newTestRepo(t)

	id := uuid.New()
	mock.ExpectExec(`UPDATE users SET rating_avg = \$1 WHERE id = \$2`).
		WithArgs(4.25, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateRatingAvg(context.Background(), id, 4.25)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
