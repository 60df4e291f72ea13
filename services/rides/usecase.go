package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// RideUC defines the interface for ride registry business logic
type RideUC interface {
	CreateRide(ctx context.Context, driverID uuid.UUID, input models.RideInput) (*models.Ride, error)
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	ListRides(ctx context.Context, filter models.RideFilter) ([]*models.Ride, error)
	UpdateRide(ctx context.Context, rideID, driverID uuid.UUID, input models.RideInput) (*models.Ride, error)
	DeleteRide(ctx context.Context, rideID, driverID uuid.UUID) error
	CompleteRide(ctx context.Context, rideID, driverID uuid.UUID) error
	CancelRide(ctx context.Context, rideID, driverID uuid.UUID) error
}
