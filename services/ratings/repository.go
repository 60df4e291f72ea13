package ratings

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// RatingRepo defines the interface for rating data access operations
type RatingRepo interface {
	CreateRating(ctx context.Context, rating *models.Rating) error
	ListRatingsByRatee(ctx context.Context, rateeID uuid.UUID) ([]*models.Rating, error)
	// AverageStars computes the simple mean of all stars the ratee ever
	// received. Zero with no error when the ratee has no ratings.
	AverageStars(ctx context.Context, rateeID uuid.UUID) (float64, error)
}
