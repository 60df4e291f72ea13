package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// RideRepo defines the interface for ride data access operations
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRideByID(ctx context.Context, id uuid.UUID) (*models.Ride, error)
	ListOpenRides(ctx context.Context, filter models.RideFilter) ([]*models.Ride, error)
	UpdateRide(ctx context.Context, ride *models.Ride) error
	UpdateRideStatus(ctx context.Context, id uuid.UUID, status models.RideStatus) error
	// DeleteRideCascade removes the ride's bookings and messages, then the
	// ride itself, inside one transaction.
	DeleteRideCascade(ctx context.Context, id uuid.UUID) error
}
