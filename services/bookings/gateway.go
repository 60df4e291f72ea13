package bookings

import (
	"context"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// BookingGW defines the interface for publishing booking lifecycle events
type BookingGW interface {
	PublishBookingRequested(ctx context.Context, booking *models.Booking) error
	PublishBookingApproved(ctx context.Context, booking *models.Booking) error
	PublishBookingRejected(ctx context.Context, booking *models.Booking) error
	PublishBookingConfirmed(ctx context.Context, booking *models.Booking) error
}
