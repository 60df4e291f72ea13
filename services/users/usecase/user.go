package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	jwtpkg "github.com/campuspool/campuspool/internal/pkg/jwt"
	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/services/users"
)

type userUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
}

// NewUserUC creates a new identity use case
func NewUserUC(cfg *models.Config, userRepo users.UserRepo) users.UserUC {
	return &userUC{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

// Register creates an unverified member account with a bcrypt password hash.
func (uc *userUC) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, apperrors.Wrap(apperrors.ErrValidation, "name and email are required")
	}
	if len(req.Password) < 8 {
		return nil, apperrors.Wrap(apperrors.ErrValidation, "password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		StudentID:    req.StudentID,
		Role:         models.RoleMember,
		Verified:     false,
		PasswordHash: string(hash),
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID.String()))
	return user, nil
}

// Login checks the password and issues a JWT.
func (uc *userUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Wrap(apperrors.ErrUnauthenticated, "invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUnauthenticated, "invalid credentials")
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user, uc.cfg.JWT)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
	}, nil
}

// GetUser fetches a user by ID
func (uc *userUC) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return uc.userRepo.GetUserByID(ctx, id)
}

// VerifyUser marks a user as verified. Only admins may verify.
func (uc *userUC) VerifyUser(ctx context.Context, userID uuid.UUID, actor models.Actor) error {
	if !actor.Authenticated() {
		return apperrors.Wrap(apperrors.ErrUnauthenticated, "login required")
	}
	if actor.Role != models.RoleAdmin {
		return apperrors.Wrap(apperrors.ErrUnauthorized, "admin role required")
	}

	if err := uc.userRepo.SetVerified(ctx, userID, true); err != nil {
		return err
	}

	logger.Info("User verified",
		logger.String("user_id", userID.String()),
		logger.String("verified_by", actor.ID.String()))
	return nil
}
