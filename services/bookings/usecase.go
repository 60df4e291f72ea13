package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// BookingUC defines the interface for the booking coordinator business logic
type BookingUC interface {
	RequestBooking(ctx context.Context, rideID, riderID uuid.UUID) (*models.Booking, error)
	ApproveBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error)
	RejectBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error)
	PayBooking(ctx context.Context, bookingID, payerID uuid.UUID) (*models.Payment, error)
	ListRideBookings(ctx context.Context, rideID, driverID uuid.UUID) ([]*models.Booking, error)
	ListRiderBookings(ctx context.Context, riderID uuid.UUID) ([]*models.Booking, error)
	Receipt(ctx context.Context, bookingID, actorID uuid.UUID) (*models.Receipt, error)
	ReceiptPDF(ctx context.Context, bookingID, actorID uuid.UUID) ([]byte, error)
}
