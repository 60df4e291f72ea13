package gateway

import (
	"context"

	"github.com/campuspool/campuspool/internal/pkg/constants"
	"github.com/campuspool/campuspool/internal/pkg/models"
	natspkg "github.com/campuspool/campuspool/internal/pkg/nats"
	"github.com/campuspool/campuspool/services/rides"
)

// RideGW publishes ride lifecycle events to NATS
type RideGW struct {
	producer *natspkg.Producer
}

// NewRideGW creates a new ride gateway
func NewRideGW(client *natspkg.Client) rides.RideGW {
	return &RideGW{producer: natspkg.NewProducer(client)}
}

// PublishRideCreated announces a newly posted ride
func (g *RideGW) PublishRideCreated(ctx context.Context, ride *models.Ride) error {
	return g.producer.Publish(constants.SubjectRideCreated, ride)
}

// PublishRideCompleted announces a completed ride
func (g *RideGW) PublishRideCompleted(ctx context.Context, ride *models.Ride) error {
	return g.producer.Publish(constants.SubjectRideCompleted, ride)
}

// PublishRideCancelled announces a cancelled ride
func (g *RideGW) PublishRideCancelled(ctx context.Context, ride *models.Ride) error {
	return g.producer.Publish(constants.SubjectRideCancelled, ride)
}
