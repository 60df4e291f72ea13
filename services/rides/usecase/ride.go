package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/pkg/observability"
	"github.com/campuspool/campuspool/services/rides"
	"github.com/campuspool/campuspool/services/users"
)

type rideUC struct {
	cfg      *models.Config
	rideRepo rides.RideRepo
	userRepo users.UserRepo
	rideGW   rides.RideGW
}

// NewRideUC creates a new ride registry use case
func NewRideUC(
	cfg *models.Config,
	rideRepo rides.RideRepo,
	userRepo users.UserRepo,
	rideGW rides.RideGW,
) rides.RideUC {
	return &rideUC{
		cfg:      cfg,
		rideRepo: rideRepo,
		userRepo: userRepo,
		rideGW:   rideGW,
	}
}

func validateDeparture(date, timeStr string) error {
	if _, err := time.Parse(models.RideDateLayout, date); err != nil {
		return apperrors.Wrap(apperrors.ErrValidation, "invalid date %q", date)
	}
	if _, err := time.Parse(models.RideTimeLayout, timeStr); err != nil {
		return apperrors.Wrap(apperrors.ErrValidation, "invalid time %q", timeStr)
	}
	return nil
}

func validateRideInput(input models.RideInput) error {
	if input.Origin == "" || input.Destination == "" {
		return apperrors.Wrap(apperrors.ErrValidation, "origin and destination are required")
	}
	if input.Seats < 0 {
		return apperrors.Wrap(apperrors.ErrValidation, "seats must not be negative")
	}
	if input.Price < 0 {
		return apperrors.Wrap(apperrors.ErrValidation, "price must not be negative")
	}
	return validateDeparture(input.Date, input.Time)
}

// CreateRide posts a new open ride. Only verified drivers may post.
func (uc *rideUC) CreateRide(ctx context.Context, driverID uuid.UUID, input models.RideInput) (*models.Ride, error) {
	driver, err := uc.userRepo.GetUserByID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if !driver.Verified {
		return nil, apperrors.Wrap(apperrors.ErrValidation, "driver must be verified to create a ride")
	}

	if err := validateRideInput(input); err != nil {
		return nil, err
	}

	ride := &models.Ride{
		DriverID:    driverID,
		Origin:      input.Origin,
		Destination: input.Destination,
		Date:        input.Date,
		Time:        input.Time,
		Seats:       input.Seats,
		Price:       input.Price,
		Status:      models.RideStatusOpen,
	}

	if err := uc.rideRepo.CreateRide(ctx, ride); err != nil {
		return nil, err
	}
	observability.RidesCreatedTotal.Inc()

	if err := uc.rideGW.PublishRideCreated(ctx, ride); err != nil {
		logger.Warn("Failed to publish ride created event",
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
	}

	logger.Info("Ride created",
		logger.String("ride_id", ride.ID.String()),
		logger.String("driver_id", driverID.String()))
	return ride, nil
}

// GetRide fetches a single ride
func (uc *rideUC) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	return uc.rideRepo.GetRideByID(ctx, rideID)
}

// ListRides returns open rides matching the filter. A malformed date filter
// is dropped rather than rejected.
func (uc *rideUC) ListRides(ctx context.Context, filter models.RideFilter) ([]*models.Ride, error) {
	if filter.Date != "" {
		if _, err := time.Parse(models.RideDateLayout, filter.Date); err != nil {
			filter.Date = ""
		}
	}
	return uc.rideRepo.ListOpenRides(ctx, filter)
}

// UpdateRide applies new fields to a ride owned by the caller
func (uc *rideUC) UpdateRide(ctx context.Context, rideID, driverID uuid.UUID, input models.RideInput) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRideByID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "only the driver may update the ride")
	}

	if err := validateRideInput(input); err != nil {
		return nil, err
	}

	ride.Origin = input.Origin
	ride.Destination = input.Destination
	ride.Date = input.Date
	ride.Time = input.Time
	ride.Seats = input.Seats
	ride.Price = input.Price

	if err := uc.rideRepo.UpdateRide(ctx, ride); err != nil {
		return nil, err
	}
	return ride, nil
}

// DeleteRide removes a ride and its dependent bookings and messages
func (uc *rideUC) DeleteRide(ctx context.Context, rideID, driverID uuid.UUID) error {
	ride, err := uc.rideRepo.GetRideByID(ctx, rideID)
	if err != nil {
		return err
	}
	if ride.DriverID != driverID {
		return apperrors.Wrap(apperrors.ErrUnauthorized, "only the driver may delete the ride")
	}

	if err := uc.rideRepo.DeleteRideCascade(ctx, rideID); err != nil {
		return err
	}

	logger.Info("Ride deleted",
		logger.String("ride_id", rideID.String()))
	return nil
}

// CompleteRide marks a ride completed
func (uc *rideUC) CompleteRide(ctx context.Context, rideID, driverID uuid.UUID) error {
	return uc.setTerminalStatus(ctx, rideID, driverID, models.RideStatusCompleted)
}

// CancelRide marks a ride cancelled. Existing bookings and payments are left
// untouched; voiding them is an open product decision.
func (uc *rideUC) CancelRide(ctx context.Context, rideID, driverID uuid.UUID) error {
	return uc.setTerminalStatus(ctx, rideID, driverID, models.RideStatusCancelled)
}

func (uc *rideUC) setTerminalStatus(ctx context.Context, rideID, driverID uuid.UUID, status models.RideStatus) error {
	ride, err := uc.rideRepo.GetRideByID(ctx, rideID)
	if err != nil {
		return err
	}
	if ride.DriverID != driverID {
		return apperrors.Wrap(apperrors.ErrUnauthorized, "only the driver may change ride status")
	}

	if err := uc.rideRepo.UpdateRideStatus(ctx, rideID, status); err != nil {
		return err
	}
	ride.Status = status

	var publishErr error
	switch status {
	case models.RideStatusCompleted:
		publishErr = uc.rideGW.PublishRideCompleted(ctx, ride)
	case models.RideStatusCancelled:
		publishErr = uc.rideGW.PublishRideCancelled(ctx, ride)
	}
	if publishErr != nil {
		logger.Warn("Failed to publish ride status event",
			logger.String("ride_id", rideID.String()),
			logger.Err(publishErr))
	}

	return nil
}
