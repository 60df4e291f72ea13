package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/models"
)

// BookingRepo implements bookings.BookingRepo backed by PostgreSQL
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateBooking inserts a new pending booking
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	booking.RequestedAt = time.Now()

	query := `
		INSERT INTO bookings (id, ride_id, rider_id, status, seats_booked, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.RideID,
		booking.RiderID,
		booking.Status,
		booking.SeatsBooked,
		booking.RequestedAt,
	)
	return err
}

// GetBookingByID retrieves a booking by ID
func (r *BookingRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking := &models.Booking{}
	query := `
		SELECT id, ride_id, rider_id, status, seats_booked, requested_at
		FROM bookings
		WHERE id = $1
	`
	if err := r.db.GetContext(ctx, booking, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "booking %s", id)
		}
		return nil, err
	}
	return booking, nil
}

// GetBookingByRideAndRider retrieves the booking a rider holds on a ride
func (r *BookingRepo) GetBookingByRideAndRider(ctx context.Context, rideID, riderID uuid.UUID) (*models.Booking, error) {
	booking := &models.Booking{}
	query := `
		SELECT id, ride_id, rider_id, status, seats_booked, requested_at
		FROM bookings
		WHERE ride_id = $1 AND rider_id = $2
	`
	if err := r.db.GetContext(ctx, booking, query, rideID, riderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "booking for ride %s rider %s", rideID, riderID)
		}
		return nil, err
	}
	return booking, nil
}

// ListBookingsByRide returns all bookings on a ride, newest first
func (r *BookingRepo) ListBookingsByRide(ctx context.Context, rideID uuid.UUID) ([]*models.Booking, error) {
	bookings := []*models.Booking{}
	query := `
		SELECT id, ride_id, rider_id, status, seats_booked, requested_at
		FROM bookings
		WHERE ride_id = $1
		ORDER BY requested_at DESC
	`
	if err := r.db.SelectContext(ctx, &bookings, query, rideID); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListBookingsByRider returns all bookings a rider holds, newest first
func (r *BookingRepo) ListBookingsByRider(ctx context.Context, riderID uuid.UUID) ([]*models.Booking, error) {
	bookings := []*models.Booking{}
	query := `
		SELECT id, ride_id, rider_id, status, seats_booked, requested_at
		FROM bookings
		WHERE rider_id = $1
		ORDER BY requested_at DESC
	`
	if err := r.db.SelectContext(ctx, &bookings, query, riderID); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateBookingStatus sets the status of a booking
func (r *BookingRepo) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE bookings SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "booking %s", id)
	}
	return nil
}

// ConfirmPayment settles an approved booking atomically. The booking row is
// locked first, then the ride row, so concurrent settlements of the same
// ride serialize on the ride lock. The seat decrement carries a
// seats >= seats_booked guard; zero rows updated means another settlement
// took the last seat and the whole transaction rolls back with ErrCapacity.
func (r *BookingRepo) ConfirmPayment(ctx context.Context, bookingID uuid.UUID) (*models.Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	booking := &models.Booking{}
	query := `
		SELECT id, ride_id, rider_id, status, seats_booked, requested_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE
	`
	if err := tx.GetContext(ctx, booking, query, bookingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "booking %s", bookingID)
		}
		return nil, err
	}
	if booking.Status != models.BookingStatusApproved {
		return nil, apperrors.Wrap(apperrors.ErrInvalidTransition,
			"booking %s is %s, expected %s", bookingID, booking.Status, models.BookingStatusApproved)
	}

	ride := &models.Ride{}
	query = `
		SELECT id, driver_id, origin, destination, date, time, seats, price, status, created_at
		FROM rides
		WHERE id = $1
		FOR UPDATE
	`
	if err := tx.GetContext(ctx, ride, query, booking.RideID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "ride %s", booking.RideID)
		}
		return nil, err
	}

	now := time.Now()
	payment := &models.Payment{
		ID:            uuid.New(),
		RideID:        booking.RideID,
		PayerID:       booking.RiderID,
		Amount:        ride.Price,
		Status:        models.PaymentStatusCompleted,
		TransactionID: "TXN-" + uuid.NewString(),
		PaidAt:        &now,
	}
	query = `
		INSERT INTO payments (id, ride_id, payer_id, amount, status, transaction_id, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := tx.ExecContext(ctx, query,
		payment.ID,
		payment.RideID,
		payment.PayerID,
		payment.Amount,
		payment.Status,
		payment.TransactionID,
		payment.PaidAt,
	); err != nil {
		return nil, fmt.Errorf("failed to insert payment: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE bookings SET status = $1 WHERE id = $2`,
		models.BookingStatusConfirmed, bookingID,
	); err != nil {
		return nil, fmt.Errorf("failed to confirm booking: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE rides SET seats = seats - $1 WHERE id = $2 AND seats >= $1`,
		booking.SeatsBooked, booking.RideID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to decrement seats: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperrors.Wrap(apperrors.ErrCapacity, "ride %s", booking.RideID)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return payment, nil
}

// GetPaymentByRideAndPayer retrieves the completed payment a payer made on a ride
func (r *BookingRepo) GetPaymentByRideAndPayer(ctx context.Context, rideID, payerID uuid.UUID) (*models.Payment, error) {
	payment := &models.Payment{}
	query := `
		SELECT id, ride_id, payer_id, amount, status, transaction_id, paid_at
		FROM payments
		WHERE ride_id = $1 AND payer_id = $2 AND status = $3
	`
	if err := r.db.GetContext(ctx, payment, query, rideID, payerID, models.PaymentStatusCompleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "payment for ride %s payer %s", rideID, payerID)
		}
		return nil, err
	}
	return payment, nil
}
