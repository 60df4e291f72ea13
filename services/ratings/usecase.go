package ratings

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// RatingUC defines the interface for the rating ledger business logic
type RatingUC interface {
	RateUser(ctx context.Context, rideID, raterID, rateeID uuid.UUID, req models.RateRequest) (*models.Rating, error)
	ListRatings(ctx context.Context, rateeID uuid.UUID) ([]*models.Rating, error)
}
