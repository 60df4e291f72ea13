package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// BookingRepo defines the interface for booking and payment data access
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	GetBookingByRideAndRider(ctx context.Context, rideID, riderID uuid.UUID) (*models.Booking, error)
	ListBookingsByRide(ctx context.Context, rideID uuid.UUID) ([]*models.Booking, error)
	ListBookingsByRider(ctx context.Context, riderID uuid.UUID) ([]*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) error
	// ConfirmPayment settles an approved booking in one transaction: it
	// locks the booking and ride rows, inserts the completed payment,
	// marks the booking confirmed and decrements the ride's seats. The
	// seat decrement is guarded so seats never go negative; the loser of
	// a race over the last seat gets ErrCapacity and nothing is written.
	ConfirmPayment(ctx context.Context, bookingID uuid.UUID) (*models.Payment, error)
	GetPaymentByRideAndPayer(ctx context.Context, rideID, payerID uuid.UUID) (*models.Payment, error)
}
