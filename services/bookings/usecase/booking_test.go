package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/services/bookings/mocks"
	rideMocks "github.com/campuspool/campuspool/services/rides/mocks"
	userMocks "github.com/campuspool/campuspool/services/users/mocks"
)

type testDeps struct {
	ctrl     *gomock.Controller
	repo     *mocks.MockBookingRepo
	rideRepo *rideMocks.MockRideRepo
	userRepo *userMocks.MockUserRepo
	gw       *mocks.MockBookingGW
	uc       *bookingUC
}

func newTestUC(t *testing.T) testDeps {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBookingRepo(ctrl)
	rideRepo := rideMocks.NewMockRideRepo(ctrl)
	userRepo := userMocks.NewMockUserRepo(ctrl)
	gw := mocks.NewMockBookingGW(ctrl)
	uc := NewBookingUC(&models.Config{}, repo, rideRepo, userRepo, gw).(*bookingUC)
	return testDeps{ctrl: ctrl, repo: repo, rideRepo: rideRepo, userRepo: userRepo, gw: gw, uc: uc}
}

func openRide(driverID uuid.UUID, seats int) *models.Ride {
	return &models.Ride{
		ID:       uuid.New(),
		DriverID: driverID,
		Origin:   "North Campus",
		Seats:    seats,
		Price:    5.0,
		Status:   models.RideStatusOpen,
	}
}

func TestRequestBooking_Success(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	riderID := uuid.New()
	ride := openRide(uuid.New(), 2)
	d.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)
	d.repo.EXPECT().
		GetBookingByRideAndRider(gomock.Any(), ride.ID, riderID).
		Return(nil, apperrors.Wrap(apperrors.ErrNotFound, "none"))
	d.repo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking *models.Booking) error {
			assert.Equal(t, models.BookingStatusPending, booking.Status)
			assert.Equal(t, 1, booking.SeatsBooked)
			booking.ID = uuid.New()
			return nil
		})
	d.gw.EXPECT().PublishBookingRequested(gomock.Any(), gomock.Any()).Return(nil)

	booking, err := d.uc.RequestBooking(context.Background(), ride.ID, riderID)
	require.NoError(t, err)
	assert.Equal(t, riderID, booking.RiderID)
}

func TestRequestBooking_SelfBooking(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	driverID := uuid.New()
	ride := openRide(driverID, 2)
	d.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := d.uc.RequestBooking(context.Background(), ride.ID, driverID)
	assert.True(t, errors.Is(err, apperrors.ErrSelfBooking))
}

func TestRequestBooking_NoSeats(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	ride := openRide(uuid.New(), 0)
	d.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := d.uc.RequestBooking(context.Background(), ride.ID, uuid.New())
	assert.True(t, errors.Is(err, apperrors.ErrCapacity))
}

func TestRequestBooking_Duplicate(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	riderID := uuid.New()
	ride := openRide(uuid.New(), 2)
	d.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)
	d.repo.EXPECT().
		GetBookingByRideAndRider(gomock.Any(), ride.ID, riderID).
		Return(&models.Booking{ID: uuid.New(), RideID: ride.ID, RiderID: riderID}, nil)

	_, err := d.uc.RequestBooking(context.Background(), ride.ID, riderID)
	assert.True(t, errors.Is(err, apperrors.ErrDuplicateBooking))
}

func TestRequestBooking_ClosedRide(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	ride := openRide(uuid.New(), 2)
	ride.Status = models.RideStatusCancelled
	d.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := d.uc.RequestBooking(context.Background(), ride.ID, uuid.New())
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestApproveBooking_Success(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	driverID := uuid.New()
	ride := openRide(driverID, 2)
	booking := &models.Booking{
		ID:      uuid.New(),
		RideID:  ride.ID,
		RiderID: uuid.New(),
		Status:  models.BookingStatusPending,
	}
	d.repo.EXPECT().GetBookingByID(gomock.Any(), booking.ID).Return(booking, nil)
	d.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)
	d.repo.EXPECT().
		UpdateBookingStatus(gomock.Any(), booking.ID, models.BookingStatusApproved).
		Return(nil)
	d.gw.EXPECT().PublishBookingApproved(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := d.uc.ApproveBooking(context.Background(), booking.ID, driverID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusApproved, updated.Status)
}

func TestApproveBooking_NotDriver(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	ride := openRide(uuid.New(), 2)
	booking := &models.Booking{
		ID:     uuid.New(),
		RideID: ride.ID,
		Status: models.BookingStatusPending,
	}
	d.repo.EXPECT().GetBookingByID(gomock.Any(), booking.ID).Return(booking, nil)
	d.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := d.uc.ApproveBooking(context.Background(), booking.ID, uuid.New())
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestRejectBooking_AlreadyDecided(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	driverID := uuid.New()
	ride := openRide(driverID, 2)
	booking := &models.Booking{
		ID:     uuid.New(),
		RideID: ride.ID,
		Status: models.BookingStatusApproved,
	}
	d.repo.EXPECT().GetBookingByID(gomock.Any(), booking.ID).Return(booking, nil)
	d.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := d.uc.RejectBooking(context.Background(), booking.ID, driverID)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidTransition))
}

func TestPayBooking_Success(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	riderID := uuid.New()
	booking := &models.Booking{
		ID:      uuid.New(),
		RideID:  uuid.New(),
		RiderID: riderID,
		Status:  models.BookingStatusApproved,
	}
	now := time.Now()
	payment := &models.Payment{
		ID:            uuid.New(),
		RideID:        booking.RideID,
		PayerID:       riderID,
		Amount:        5.0,
		Status:        models.PaymentStatusCompleted,
		TransactionID: "TXN-" + uuid.NewString(),
		PaidAt:        &now,
	}
	d.repo.EXPECT().GetBookingByID(gomock.Any(), booking.ID).Return(booking, nil)
	d.repo.EXPECT().ConfirmPayment(gomock.Any(), booking.ID).Return(payment, nil)
	d.gw.EXPECT().
		PublishBookingConfirmed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.Booking) error {
			assert.Equal(t, models.BookingStatusConfirmed, b.Status)
			return nil
		})

	got, err := d.uc.PayBooking(context.Background(), booking.ID, riderID)
	require.NoError(t, err)
	assert.Equal(t, payment.TransactionID, got.TransactionID)
}

func TestPayBooking_NotRider(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	booking := &models.Booking{
		ID:      uuid.New(),
		RiderID: uuid.New(),
		Status:  models.BookingStatusApproved,
	}
	d.repo.EXPECT().GetBookingByID(gomock.Any(), booking.ID).Return(booking, nil)

	_, err := d.uc.PayBooking(context.Background(), booking.ID, uuid.New())
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestPayBooking_NotApproved(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	riderID := uuid.New()
	for _, status := range []models.BookingStatus{
		models.BookingStatusPending,
		models.BookingStatusRejected,
		models.BookingStatusConfirmed,
	} {
		booking := &models.Booking{ID: uuid.New(), RiderID: riderID, Status: status}
		d.repo.EXPECT().GetBookingByID(gomock.Any(), booking.ID).Return(booking, nil)

		_, err := d.uc.PayBooking(context.Background(), booking.ID, riderID)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidTransition), "status %s", status)
	}
}

func TestPayBooking_CapacityRace(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	riderID := uuid.New()
	booking := &models.Booking{
		ID:      uuid.New(),
		RideID:  uuid.New(),
		RiderID: riderID,
		Status:  models.BookingStatusApproved,
	}
	d.repo.EXPECT().GetBookingByID(gomock.Any(), booking.ID).Return(booking, nil)
	d.repo.EXPECT().
		ConfirmPayment(gomock.Any(), booking.ID).
		Return(nil, apperrors.Wrap(apperrors.ErrCapacity, "ride %s", booking.RideID))

	_, err := d.uc.PayBooking(context.Background(), booking.ID, riderID)
	assert.True(t, errors.Is(err, apperrors.ErrCapacity))
}

func TestListRideBookings_DriverOnly(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	ride := openRide(uuid.New(), 2)
	d.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := d.uc.ListRideBookings(context.Background(), ride.ID, uuid.New())
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestReceipt_Success(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	driverID := uuid.New()
	riderID := uuid.New()
	ride := openRide(driverID, 2)
	booking := &models.Booking{
		ID:      uuid.New(),
		RideID:  ride.ID,
		RiderID: riderID,
		Status:  models.BookingStatusConfirmed,
	}
	now := time.Now()
	payment := &models.Payment{
		ID:            uuid.New(),
		RideID:        ride.ID,
		PayerID:       riderID,
		Amount:        5.0,
		Status:        models.PaymentStatusCompleted,
		TransactionID: "TXN-" + uuid.NewString(),
		PaidAt:        &now,
	}
	d.repo.EXPECT().GetBookingByID(gomock.Any(), booking.ID).Return(booking, nil)
	d.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)
	d.repo.EXPECT().GetPaymentByRideAndPayer(gomock.Any(), ride.ID, riderID).Return(payment, nil)
	d.userRepo.EXPECT().GetUserByID(gomock.Any(), driverID).Return(&models.User{ID: driverID, Name: "Grace"}, nil)

	receipt, err := d.uc.Receipt(context.Background(), booking.ID, riderID)
	require.NoError(t, err)
	assert.Equal(t, "Grace", receipt.DriverName)
	assert.Equal(t, payment.TransactionID, receipt.Payment.TransactionID)
}

func TestReceipt_Stranger(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	ride := openRide(uuid.New(), 2)
	booking := &models.Booking{
		ID:      uuid.New(),
		RideID:  ride.ID,
		RiderID: uuid.New(),
		Status:  models.BookingStatusConfirmed,
	}
	d.repo.EXPECT().GetBookingByID(gomock.Any(), booking.ID).Return(booking, nil)
	d.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := d.uc.Receipt(context.Background(), booking.ID, uuid.New())
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestReceiptPDF_RendersDocument(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	driverID := uuid.New()
	riderID := uuid.New()
	ride := openRide(driverID, 2)
	booking := &models.Booking{
		ID:      uuid.New(),
		RideID:  ride.ID,
		RiderID: riderID,
		Status:  models.BookingStatusConfirmed,
	}
	now := time.Now()
	payment := &models.Payment{
		ID:            uuid.New(),
		RideID:        ride.ID,
		PayerID:       riderID,
		Amount:        5.0,
		Status:        models.PaymentStatusCompleted,
		TransactionID: "TXN-" + uuid.NewString(),
		PaidAt:        &now,
	}
	d.repo.EXPECT().GetBookingByID(gomock.Any(), booking.ID).Return(booking, nil)
	d.rideRepo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)
	d.repo.EXPECT().GetPaymentByRideAndPayer(gomock.Any(), ride.ID, riderID).Return(payment, nil)
	d.userRepo.EXPECT().GetUserByID(gomock.Any(), driverID).Return(&models.User{ID: driverID, Name: "Grace"}, nil)

	pdfBytes, err := d.uc.ReceiptPDF(context.Background(), booking.ID, riderID)
	require.NoError(t, err)
	assert.True(t, len(pdfBytes) > 0)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}
