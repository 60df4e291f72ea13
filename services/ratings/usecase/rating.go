package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/services/bookings"
	"github.com/campuspool/campuspool/services/ratings"
	"github.com/campuspool/campuspool/services/rides"
	"github.com/campuspool/campuspool/services/users"
)

type ratingUC struct {
	cfg         *models.Config
	ratingRepo  ratings.RatingRepo
	rideRepo    rides.RideRepo
	bookingRepo bookings.BookingRepo
	userRepo    users.UserRepo
}

// NewRatingUC creates a new rating ledger use case
func NewRatingUC(
	cfg *models.Config,
	ratingRepo ratings.RatingRepo,
	rideRepo rides.RideRepo,
	bookingRepo bookings.BookingRepo,
	userRepo users.UserRepo,
) ratings.RatingUC {
	return &ratingUC{
		cfg:         cfg,
		ratingRepo:  ratingRepo,
		rideRepo:    rideRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
	}
}

// RateUser appends a star rating and recomputes the ratee's mean. The rater
// must be the ride's driver or hold a confirmed booking on it.
func (uc *ratingUC) RateUser(ctx context.Context, rideID, raterID, rateeID uuid.UUID, req models.RateRequest) (*models.Rating, error) {
	if req.Stars < 1 || req.Stars > 5 {
		return nil, apperrors.Wrap(apperrors.ErrValidation, "stars must be between 1 and 5, got %d", req.Stars)
	}

	ride, err := uc.rideRepo.GetRideByID(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if ride.DriverID != raterID {
		booking, err := uc.bookingRepo.GetBookingByRideAndRider(ctx, rideID, raterID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "rater did not take part in ride %s", rideID)
			}
			return nil, err
		}
		if booking.Status != models.BookingStatusConfirmed {
			return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "rater did not take part in ride %s", rideID)
		}
	}

	if _, err := uc.userRepo.GetUserByID(ctx, rateeID); err != nil {
		return nil, err
	}

	rating := &models.Rating{
		RideID:  rideID,
		RaterID: raterID,
		RateeID: rateeID,
		Stars:   req.Stars,
		Comment: req.Comment,
	}
	if err := uc.ratingRepo.CreateRating(ctx, rating); err != nil {
		return nil, err
	}

	avg, err := uc.ratingRepo.AverageStars(ctx, rateeID)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.UpdateRatingAvg(ctx, rateeID, avg); err != nil {
		return nil, err
	}

	logger.Info("Rating recorded",
		logger.String("ride_id", rideID.String()),
		logger.String("ratee_id", rateeID.String()),
		logger.Int("stars", req.Stars),
		logger.Float64("rating_avg", avg))
	return rating, nil
}

// ListRatings returns the ratings a user received
func (uc *ratingUC) ListRatings(ctx context.Context, rateeID uuid.UUID) ([]*models.Rating, error) {
	return uc.ratingRepo.ListRatingsByRatee(ctx, rateeID)
}
