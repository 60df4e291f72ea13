package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// UserRepo defines the interface for user data access operations
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
	UpdateRatingAvg(ctx context.Context, id uuid.UUID, avg float64) error
}
