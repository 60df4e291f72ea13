package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/models"
	bookingMocks "github.com/campuspool/campuspool/services/bookings/mocks"
	"github.com/campuspool/campuspool/services/ratings/mocks"
	rideMocks "github.com/campuspool/campuspool/services/rides/mocks"
	userMocks "github.com/campuspool/campuspool/services/users/mocks"
)

type testDeps struct {
	ctrl        *gomock.Controller
	ratingRepo  *mocks.MockRatingRepo
	rideRepo    *rideMocks.MockRideRepo
	bookingRepo *bookingMocks.MockBookingRepo
	userRepo    *userMocks.MockUserRepo
	uc          *ratingUC
}

func newTestUC(t *testing.T) testDeps {
	ctrl := gomock.NewController(t)
	ratingRepo := mocks.NewMockRatingRepo(ctrl)
	rideRepo := rideMocks.NewMockRideRepo(ctrl)
	bookingRepo := bookingMocks.NewMockBookingRepo(ctrl)
	userRepo := userMocks.NewMockUserRepo(ctrl)
	uc := NewRatingUC(&models.Config{}, ratingRepo, rideRepo, bookingRepo, userRepo).(*ratingUC)
	return testDeps{
		ctrl:        ctrl,
		ratingRepo:  ratingRepo,
		rideRepo:    rideRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		uc:          uc,
	}
}

func TestRateUser_StarsOutOfRange(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	for _, stars := range []int{0, 6, -1} {
		_, err := d.uc.RateUser(context.Background(), uuid.New(), uuid.New(), uuid.New(),
			models.RateRequest{Stars: stars})
		assert.True(t, errors.Is(err, apperrors.ErrValidation), "stars %d", stars)
	}
}

func TestRateUser_DriverRatesRider(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	driverID := uuid.New()
	rateeID := uuid.New()
	rideID := uuid.New()
	d.rideRepo.EXPECT().
		GetRideByID(gomock.Any(), rideID).
		Return(&models.Ride{ID: rideID, DriverID: driverID}, nil)
	d.userRepo.EXPECT().
		GetUserByID(gomock.Any(), rateeID).
		Return(&models.User{ID: rateeID}, nil)
	d.ratingRepo.EXPECT().CreateRating(gomock.Any(), gomock.Any()).Return(nil)
	d.ratingRepo.EXPECT().AverageStars(gomock.Any(), rateeID).Return(4.0, nil)
	d.userRepo.EXPECT().UpdateRatingAvg(gomock.Any(), rateeID, 4.0).Return(nil)

	rating, err := d.uc.RateUser(context.Background(), rideID, driverID, rateeID,
		models.RateRequest{Stars: 4, Comment: "smooth ride"})
	require.NoError(t, err)
	assert.Equal(t, 4, rating.Stars)
}

func TestRateUser_ConfirmedRiderRatesDriver(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	driverID := uuid.New()
	riderID := uuid.New()
	rideID := uuid.New()
	d.rideRepo.EXPECT().
		GetRideByID(gomock.Any(), rideID).
		Return(&models.Ride{ID: rideID, DriverID: driverID}, nil)
	d.bookingRepo.EXPECT().
		GetBookingByRideAndRider(gomock.Any(), rideID, riderID).
		Return(&models.Booking{RideID: rideID, RiderID: riderID, Status: models.BookingStatusConfirmed}, nil)
	d.userRepo.EXPECT().
		GetUserByID(gomock.Any(), driverID).
		Return(&models.User{ID: driverID}, nil)
	d.ratingRepo.EXPECT().CreateRating(gomock.Any(), gomock.Any()).Return(nil)
	d.ratingRepo.EXPECT().AverageStars(gomock.Any(), driverID).Return(5.0, nil)
	d.userRepo.EXPECT().UpdateRatingAvg(gomock.Any(), driverID, 5.0).Return(nil)

	_, err := d.uc.RateUser(context.Background(), rideID, riderID, driverID,
		models.RateRequest{Stars: 5})
	assert.NoError(t, err)
}

func TestRateUser_NonParticipant(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	rideID := uuid.New()
	raterID := uuid.New()
	d.rideRepo.EXPECT().
		GetRideByID(gomock.Any(), rideID).
		Return(&models.Ride{ID: rideID, DriverID: uuid.New()}, nil)
	d.bookingRepo.EXPECT().
		GetBookingByRideAndRider(gomock.Any(), rideID, raterID).
		Return(nil, apperrors.Wrap(apperrors.ErrNotFound, "none"))

	_, err := d.uc.RateUser(context.Background(), rideID, raterID, uuid.New(),
		models.RateRequest{Stars: 3})
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestRateUser_UnconfirmedBooking(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	rideID := uuid.New()
	raterID := uuid.New()
	d.rideRepo.EXPECT().
		GetRideByID(gomock.Any(), rideID).
		Return(&models.Ride{ID: rideID, DriverID: uuid.New()}, nil)
	d.bookingRepo.EXPECT().
		GetBookingByRideAndRider(gomock.Any(), rideID, raterID).
		Return(&models.Booking{RideID: rideID, RiderID: raterID, Status: models.BookingStatusApproved}, nil)

	_, err := d.uc.RateUser(context.Background(), rideID, raterID, uuid.New(),
		models.RateRequest{Stars: 3})
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestRateUser_MeanShiftsWithEachRating(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	driverID := uuid.New()
	rateeID := uuid.New()
	rideID := uuid.New()

	d.rideRepo.EXPECT().
		GetRideByID(gomock.Any(), rideID).
		Return(&models.Ride{ID: rideID, DriverID: driverID}, nil).
		Times(2)
	d.userRepo.EXPECT().
		GetUserByID(gomock.Any(), rateeID).
		Return(&models.User{ID: rateeID}, nil).
		Times(2)
	d.ratingRepo.EXPECT().CreateRating(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	gomock.InOrder(
		d.ratingRepo.EXPECT().AverageStars(gomock.Any(), rateeID).Return(4.0, nil),
		d.ratingRepo.EXPECT().AverageStars(gomock.Any(), rateeID).Return(4.0, nil),
	)
	d.userRepo.EXPECT().UpdateRatingAvg(gomock.Any(), rateeID, 4.0).Return(nil).Times(2)

	// [5,3] averages to 4.0, a further 4 keeps it at 4.0
	_, err := d.uc.RateUser(context.Background(), rideID, driverID, rateeID, models.RateRequest{Stars: 3})
	require.NoError(t, err)
	_, err = d.uc.RateUser(context.Background(), rideID, driverID, rateeID, models.RateRequest{Stars: 4})
	require.NoError(t, err)
}
