package gateway

import (
	"context"

	"github.com/campuspool/campuspool/internal/pkg/constants"
	"github.com/campuspool/campuspool/internal/pkg/models"
	natspkg "github.com/campuspool/campuspool/internal/pkg/nats"
	"github.com/campuspool/campuspool/services/bookings"
)

// BookingGW publishes booking lifecycle events to NATS
type BookingGW struct {
	producer *natspkg.Producer
}

// NewBookingGW creates a new booking gateway
func NewBookingGW(client *natspkg.Client) bookings.BookingGW {
	return &BookingGW{producer: natspkg.NewProducer(client)}
}

func event(booking *models.Booking) models.BookingEvent {
	return models.BookingEvent{
		BookingID: booking.ID,
		RideID:    booking.RideID,
		RiderID:   booking.RiderID,
		Status:    booking.Status,
	}
}

// PublishBookingRequested announces a new pending booking
func (g *BookingGW) PublishBookingRequested(ctx context.Context, booking *models.Booking) error {
	return g.producer.Publish(constants.SubjectBookingRequested, event(booking))
}

// PublishBookingApproved announces a driver approval
func (g *BookingGW) PublishBookingApproved(ctx context.Context, booking *models.Booking) error {
	return g.producer.Publish(constants.SubjectBookingApproved, event(booking))
}

// PublishBookingRejected announces a driver rejection
func (g *BookingGW) PublishBookingRejected(ctx context.Context, booking *models.Booking) error {
	return g.producer.Publish(constants.SubjectBookingRejected, event(booking))
}

// PublishBookingConfirmed announces a settled booking
func (g *BookingGW) PublishBookingConfirmed(ctx context.Context, booking *models.Booking) error {
	return g.producer.Publish(constants.SubjectBookingConfirmed, event(booking))
}
