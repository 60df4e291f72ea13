package rides

import (
	"context"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// RideGW defines the interface for publishing ride lifecycle events
type RideGW interface {
	PublishRideCreated(ctx context.Context, ride *models.Ride) error
	PublishRideCompleted(ctx context.Context, ride *models.Ride) error
	PublishRideCancelled(ctx context.Context, ride *models.Ride) error
}
