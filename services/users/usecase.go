package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// UserUC defines the interface for identity business logic
type UserUC interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	VerifyUser(ctx context.Context, userID uuid.UUID, actor models.Actor) error
}
