package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/pkg/observability"
	"github.com/campuspool/campuspool/services/bookings"
	"github.com/campuspool/campuspool/services/rides"
	"github.com/campuspool/campuspool/services/users"
)

type bookingUC struct {
	cfg         *models.Config
	bookingRepo bookings.BookingRepo
	rideRepo    rides.RideRepo
	userRepo    users.UserRepo
	bookingGW   bookings.BookingGW
}

// NewBookingUC creates a new booking coordinator use case
func NewBookingUC(
	cfg *models.Config,
	bookingRepo bookings.BookingRepo,
	rideRepo rides.RideRepo,
	userRepo users.UserRepo,
	bookingGW bookings.BookingGW,
) bookings.BookingUC {
	return &bookingUC{
		cfg:         cfg,
		bookingRepo: bookingRepo,
		rideRepo:    rideRepo,
		userRepo:    userRepo,
		bookingGW:   bookingGW,
	}
}

// RequestBooking creates a pending booking for one seat on an open ride
func (uc *bookingUC) RequestBooking(ctx context.Context, rideID, riderID uuid.UUID) (*models.Booking, error) {
	ride, err := uc.rideRepo.GetRideByID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusOpen {
		return nil, apperrors.Wrap(apperrors.ErrValidation, "ride %s is %s", rideID, ride.Status)
	}
	if ride.DriverID == riderID {
		return nil, apperrors.Wrap(apperrors.ErrSelfBooking, "ride %s", rideID)
	}
	if ride.Seats <= 0 {
		return nil, apperrors.Wrap(apperrors.ErrCapacity, "ride %s", rideID)
	}

	existing, err := uc.bookingRepo.GetBookingByRideAndRider(ctx, rideID, riderID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Wrap(apperrors.ErrDuplicateBooking, "ride %s rider %s", rideID, riderID)
	}

	booking := &models.Booking{
		RideID:      rideID,
		RiderID:     riderID,
		Status:      models.BookingStatusPending,
		SeatsBooked: 1,
	}
	if err := uc.bookingRepo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}
	observability.BookingsTotal.WithLabelValues(string(models.BookingStatusPending)).Inc()

	if err := uc.bookingGW.PublishBookingRequested(ctx, booking); err != nil {
		logger.Warn("Failed to publish booking requested event",
			logger.String("booking_id", booking.ID.String()),
			logger.Err(err))
	}

	logger.Info("Booking requested",
		logger.String("booking_id", booking.ID.String()),
		logger.String("ride_id", rideID.String()),
		logger.String("rider_id", riderID.String()))
	return booking, nil
}

// ApproveBooking moves a pending booking to approved. Driver only.
func (uc *bookingUC) ApproveBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error) {
	return uc.decide(ctx, bookingID, driverID, models.BookingStatusApproved)
}

// RejectBooking moves a pending booking to rejected. Driver only.
func (uc *bookingUC) RejectBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error) {
	return uc.decide(ctx, bookingID, driverID, models.BookingStatusRejected)
}

func (uc *bookingUC) decide(ctx context.Context, bookingID, driverID uuid.UUID, decision models.BookingStatus) (*models.Booking, error) {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	ride, err := uc.rideRepo.GetRideByID(ctx, booking.RideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "only the driver may decide booking %s", bookingID)
	}
	if booking.Status != models.BookingStatusPending {
		return nil, apperrors.Wrap(apperrors.ErrInvalidTransition,
			"booking %s is %s, expected %s", bookingID, booking.Status, models.BookingStatusPending)
	}

	if err := uc.bookingRepo.UpdateBookingStatus(ctx, bookingID, decision); err != nil {
		return nil, err
	}
	booking.Status = decision
	observability.BookingsTotal.WithLabelValues(string(decision)).Inc()

	var publishErr error
	switch decision {
	case models.BookingStatusApproved:
		publishErr = uc.bookingGW.PublishBookingApproved(ctx, booking)
	case models.BookingStatusRejected:
		publishErr = uc.bookingGW.PublishBookingRejected(ctx, booking)
	}
	if publishErr != nil {
		logger.Warn("Failed to publish booking decision event",
			logger.String("booking_id", bookingID.String()),
			logger.Err(publishErr))
	}

	return booking, nil
}

// PayBooking settles an approved booking with a simulated payment. The
// payment insert, booking confirmation and seat decrement happen in one
// repository transaction; the repository rejects the settlement when the
// booking is not approved or when the ride ran out of seats.
func (uc *bookingUC) PayBooking(ctx context.Context, bookingID, payerID uuid.UUID) (*models.Payment, error) {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.RiderID != payerID {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "only the rider may pay booking %s", bookingID)
	}
	if booking.Status != models.BookingStatusApproved {
		return nil, apperrors.Wrap(apperrors.ErrInvalidTransition,
			"booking %s is %s, expected %s", bookingID, booking.Status, models.BookingStatusApproved)
	}

	payment, err := uc.bookingRepo.ConfirmPayment(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	booking.Status = models.BookingStatusConfirmed
	observability.BookingsTotal.WithLabelValues(string(models.BookingStatusConfirmed)).Inc()
	observability.PaymentsTotal.Inc()

	if err := uc.bookingGW.PublishBookingConfirmed(ctx, booking); err != nil {
		logger.Warn("Failed to publish booking confirmed event",
			logger.String("booking_id", bookingID.String()),
			logger.Err(err))
	}

	logger.Info("Booking paid",
		logger.String("booking_id", bookingID.String()),
		logger.String("transaction_id", payment.TransactionID))
	return payment, nil
}

// ListRideBookings returns all bookings on a ride. Driver only.
func (uc *bookingUC) ListRideBookings(ctx context.Context, rideID, driverID uuid.UUID) ([]*models.Booking, error) {
	ride, err := uc.rideRepo.GetRideByID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "only the driver may list ride bookings")
	}
	return uc.bookingRepo.ListBookingsByRide(ctx, rideID)
}

// ListRiderBookings returns the bookings the rider holds
func (uc *bookingUC) ListRiderBookings(ctx context.Context, riderID uuid.UUID) ([]*models.Booking, error) {
	return uc.bookingRepo.ListBookingsByRider(ctx, riderID)
}

// Receipt assembles the payment view for a confirmed booking. Visible to
// the rider who paid and to the ride's driver.
func (uc *bookingUC) Receipt(ctx context.Context, bookingID, actorID uuid.UUID) (*models.Receipt, error) {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	ride, err := uc.rideRepo.GetRideByID(ctx, booking.RideID)
	if err != nil {
		return nil, err
	}
	if actorID != booking.RiderID && actorID != ride.DriverID {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "receipt for booking %s", bookingID)
	}

	payment, err := uc.bookingRepo.GetPaymentByRideAndPayer(ctx, booking.RideID, booking.RiderID)
	if err != nil {
		return nil, err
	}

	driver, err := uc.userRepo.GetUserByID(ctx, ride.DriverID)
	if err != nil {
		return nil, err
	}

	return &models.Receipt{
		Booking:    *booking,
		Payment:    *payment,
		Ride:       *ride,
		DriverName: driver.Name,
	}, nil
}

// ReceiptPDF renders the receipt as a PDF document
func (uc *bookingUC) ReceiptPDF(ctx context.Context, bookingID, actorID uuid.UUID) ([]byte, error) {
	receipt, err := uc.Receipt(ctx, bookingID, actorID)
	if err != nil {
		return nil, err
	}
	return renderReceiptPDF(receipt)
}
