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
	"github.com/campuspool/campuspool/services/rides/mocks"
	userMocks "github.com/campuspool/campuspool/services/users/mocks"
)

func newTestUC(t *testing.T) (*gomock.Controller, *mocks.MockRideRepo, *userMocks.MockUserRepo, *mocks.MockRideGW, *rideUC) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockRideRepo(ctrl)
	mockUserRepo := userMocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRideGW(ctrl)
	uc := NewRideUC(&models.Config{}, mockRepo, mockUserRepo, mockGW).(*rideUC)
	return ctrl, mockRepo, mockUserRepo, mockGW, uc
}

func validInput() models.RideInput {
	return models.RideInput{
		Origin:      "North Campus",
		Destination: "Central Station",
		Date:        "2026-10-01",
		Time:        "08:30",
		Seats:       3,
		Price:       5.0,
	}
}

func TestCreateRide_Success(t *testing.T) {
	ctrl, mockRepo, mockUserRepo, mockGW, uc := newTestUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	mockUserRepo.EXPECT().
		GetUserByID(gomock.Any(), driverID).
		Return(&models.User{ID: driverID, Verified: true}, nil)
	mockRepo.EXPECT().
		CreateRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ride *models.Ride) error {
			assert.Equal(t, driverID, ride.DriverID)
			assert.Equal(t, models.RideStatusOpen, ride.Status)
			ride.ID = uuid.New()
			return nil
		})
	mockGW.EXPECT().
		PublishRideCreated(gomock.Any(), gomock.Any()).
		Return(nil)

	ride, err := uc.CreateRide(context.Background(), driverID, validInput())
	require.NoError(t, err)
	assert.Equal(t, "North Campus", ride.Origin)
	assert.Equal(t, 3, ride.Seats)
}

func TestCreateRide_UnverifiedDriver(t *testing.T) {
	ctrl, _, mockUserRepo, _, uc := newTestUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	mockUserRepo.EXPECT().
		GetUserByID(gomock.Any(), driverID).
		Return(&models.User{ID: driverID, Verified: false}, nil)

	_, err := uc.CreateRide(context.Background(), driverID, validInput())
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestCreateRide_BadDeparture(t *testing.T) {
	ctrl, _, mockUserRepo, _, uc := newTestUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	mockUserRepo.EXPECT().
		GetUserByID(gomock.Any(), driverID).
		Return(&models.User{ID: driverID, Verified: true}, nil).
		Times(2)

	input := validInput()
	input.Date = "01-10-2026"
	_, err := uc.CreateRide(context.Background(), driverID, input)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	input = validInput()
	input.Time = "8:30pm"
	_, err = uc.CreateRide(context.Background(), driverID, input)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestCreateRide_PublishFailureDoesNotFail(t *testing.T) {
	ctrl, mockRepo, mockUserRepo, mockGW, uc := newTestUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	mockUserRepo.EXPECT().
		GetUserByID(gomock.Any(), driverID).
		Return(&models.User{ID: driverID, Verified: true}, nil)
	mockRepo.EXPECT().
		CreateRide(gomock.Any(), gomock.Any()).
		Return(nil)
	mockGW.EXPECT().
		PublishRideCreated(gomock.Any(), gomock.Any()).
		Return(errors.New("nats down"))

	_, err := uc.CreateRide(context.Background(), driverID, validInput())
	assert.NoError(t, err)
}

func TestListRides_DropsMalformedDateFilter(t *testing.T) {
	ctrl, mockRepo, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		ListOpenRides(gomock.Any(), models.RideFilter{Origin: "North"}).
		Return([]*models.Ride{}, nil)

	_, err := uc.ListRides(context.Background(), models.RideFilter{
		Origin: "North",
		Date:   "not-a-date",
	})
	assert.NoError(t, err)
}

func TestListRides_KeepsValidDateFilter(t *testing.T) {
	ctrl, mockRepo, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	filter := models.RideFilter{Date: "2026-10-01"}
	mockRepo.EXPECT().
		ListOpenRides(gomock.Any(), filter).
		Return([]*models.Ride{{Origin: "North Campus"}}, nil)

	result, err := uc.ListRides(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestUpdateRide_NotOwner(t *testing.T) {
	ctrl, mockRepo, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	rideID := uuid.New()
	mockRepo.EXPECT().
		GetRideByID(gomock.Any(), rideID).
		Return(&models.Ride{ID: rideID, DriverID: uuid.New()}, nil)

	_, err := uc.UpdateRide(context.Background(), rideID, uuid.New(), validInput())
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestUpdateRide_Success(t *testing.T) {
	ctrl, mockRepo, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	rideID := uuid.New()
	driverID := uuid.New()
	mockRepo.EXPECT().
		GetRideByID(gomock.Any(), rideID).
		Return(&models.Ride{ID: rideID, DriverID: driverID, Origin: "Old"}, nil)
	mockRepo.EXPECT().
		UpdateRide(gomock.Any(), gomock.Any()).
		Return(nil)

	ride, err := uc.UpdateRide(context.Background(), rideID, driverID, validInput())
	require.NoError(t, err)
	assert.Equal(t, "North Campus", ride.Origin)
}

func TestDeleteRide_NotOwner(t *testing.T) {
	ctrl, mockRepo, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	rideID := uuid.New()
	mockRepo.EXPECT().
		GetRideByID(gomock.Any(), rideID).
		Return(&models.Ride{ID: rideID, DriverID: uuid.New()}, nil)

	err := uc.DeleteRide(context.Background(), rideID, uuid.New())
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestDeleteRide_Cascades(t *testing.T) {
	ctrl, mockRepo, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	rideID := uuid.New()
	driverID := uuid.New()
	mockRepo.EXPECT().
		GetRideByID(gomock.Any(), rideID).
		Return(&models.Ride{ID: rideID, DriverID: driverID}, nil)
	mockRepo.EXPECT().
		DeleteRideCascade(gomock.Any(), rideID).
		Return(nil)

	err := uc.DeleteRide(context.Background(), rideID, driverID)
	assert.NoError(t, err)
}

func TestCompleteRide_PublishesEvent(t *testing.T) {
	ctrl, mockRepo, _, mockGW, uc := newTestUC(t)
	defer ctrl.Finish()

	rideID := uuid.New()
	driverID := uuid.New()
	mockRepo.EXPECT().
		GetRideByID(gomock.Any(), rideID).
		Return(&models.Ride{ID: rideID, DriverID: driverID, Status: models.RideStatusOpen}, nil)
	mockRepo.EXPECT().
		UpdateRideStatus(gomock.Any(), rideID, models.RideStatusCompleted).
		Return(nil)
	mockGW.EXPECT().
		PublishRideCompleted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ride *models.Ride) error {
			assert.Equal(t, models.RideStatusCompleted, ride.Status)
			return nil
		})

	err := uc.CompleteRide(context.Background(), rideID, driverID)
	assert.NoError(t, err)
}

func TestCancelRide_NotOwner(t *testing.T) {
	ctrl, mockRepo, _, _, uc := newTestUC(t)
	defer ctrl.Finish()

	rideID := uuid.New()
	mockRepo.EXPECT().
		GetRideByID(gomock.Any(), rideID).
		Return(&models.Ride{ID: rideID, DriverID: uuid.New()}, nil)

	err := uc.CancelRide(context.Background(), rideID, uuid.New())
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}
