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

// RideRepo implements rides.RideRepo backed by PostgreSQL
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateRide inserts a new ride
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	if ride.ID == uuid.Nil {
		ride.ID = uuid.New()
	}
	ride.CreatedAt = time.Now()

	query := `
		INSERT INTO rides (id, driver_id, origin, destination, date, time, seats, price, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		ride.ID,
		ride.DriverID,
		ride.Origin,
		ride.Destination,
		ride.Date,
		ride.Time,
		ride.Seats,
		ride.Price,
		ride.Status,
		ride.CreatedAt,
	)
	return err
}

// GetRideByID retrieves a ride by ID
func (r *RideRepo) GetRideByID(ctx context.Context, id uuid.UUID) (*models.Ride, error) {
	ride := &models.Ride{}
	query := `
		SELECT id, driver_id, origin, destination, date, time, seats, price, status, created_at
		FROM rides
		WHERE id = $1
	`
	if err := r.db.GetContext(ctx, ride, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "ride %s", id)
		}
		return nil, err
	}
	return ride, nil
}

// ListOpenRides returns open rides matching the filter, ordered by departure.
// Origin and destination match as case-insensitive substrings, date exactly.
func (r *RideRepo) ListOpenRides(ctx context.Context, filter models.RideFilter) ([]*models.Ride, error) {
	query := `
		SELECT id, driver_id, origin, destination, date, time, seats, price, status, created_at
		FROM rides
		WHERE status = $1
	`
	args := []interface{}{models.RideStatusOpen}

	if filter.Origin != "" {
		args = append(args, "%"+filter.Origin+"%")
		query += fmt.Sprintf(" AND origin ILIKE $%d", len(args))
	}
	if filter.Destination != "" {
		args = append(args, "%"+filter.Destination+"%")
		query += fmt.Sprintf(" AND destination ILIKE $%d", len(args))
	}
	if filter.Date != "" {
		args = append(args, filter.Date)
		query += fmt.Sprintf(" AND date = $%d", len(args))
	}

	query += " ORDER BY date ASC, time ASC"

	rides := []*models.Ride{}
	if err := r.db.SelectContext(ctx, &rides, query, args...); err != nil {
		return nil, err
	}
	return rides, nil
}

// UpdateRide applies the mutable fields of a ride in place
func (r *RideRepo) UpdateRide(ctx context.Context, ride *models.Ride) error {
	query := `
		UPDATE rides
		SET origin = $1, destination = $2, date = $3, time = $4, seats = $5, price = $6
		WHERE id = $7
	`
	result, err := r.db.ExecContext(ctx, query,
		ride.Origin,
		ride.Destination,
		ride.Date,
		ride.Time,
		ride.Seats,
		ride.Price,
		ride.ID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "ride %s", ride.ID)
	}
	return nil
}

// UpdateRideStatus sets the status of a ride
func (r *RideRepo) UpdateRideStatus(ctx context.Context, id uuid.UUID, status models.RideStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE rides SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "ride %s", id)
	}
	return nil
}

// DeleteRideCascade removes dependent bookings and messages before the ride
// itself, all inside one transaction.
func (r *RideRepo) DeleteRideCascade(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE ride_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete bookings: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE ride_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete messages: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM rides WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ride: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "ride %s", id)
	}

	return tx.Commit()
}
