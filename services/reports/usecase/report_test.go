package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/services/reports/mocks"
	rideMocks "github.com/campuspool/campuspool/services/rides/mocks"
	userMocks "github.com/campuspool/campuspool/services/users/mocks"
)

type testDeps struct {
	ctrl       *gomock.Controller
	reportRepo *mocks.MockReportRepo
	userRepo   *userMocks.MockUserRepo
	rideRepo   *rideMocks.MockRideRepo
	uc         *reportUC
}

func newTestUC(t *testing.T) testDeps {
	ctrl := gomock.NewController(t)
	reportRepo := mocks.NewMockReportRepo(ctrl)
	userRepo := userMocks.NewMockUserRepo(ctrl)
	rideRepo := rideMocks.NewMockRideRepo(ctrl)
	uc := NewReportUC(&models.Config{}, reportRepo, userRepo, rideRepo).(*reportUC)
	return testDeps{ctrl: ctrl, reportRepo: reportRepo, userRepo: userRepo, rideRepo: rideRepo, uc: uc}
}

func TestReportUser_Success(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	reporterID := uuid.New()
	reportedID := uuid.New()
	d.userRepo.EXPECT().
		GetUserByID(gomock.Any(), reportedID).
		Return(&models.User{ID: reportedID}, nil)
	d.reportRepo.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report *models.Report) error {
			assert.Equal(t, models.ReportStatusPending, report.Status)
			require.NotNil(t, report.ReportedUserID)
			assert.Equal(t, reportedID, *report.ReportedUserID)
			assert.Nil(t, report.RideID)
			return nil
		})

	report, err := d.uc.ReportUser(context.Background(), reporterID, reportedID,
		models.ReportRequest{Reason: "no-show", Description: "left us waiting"})
	require.NoError(t, err)
	assert.Equal(t, reporterID, report.ReporterID)
}

func TestReportUser_MissingReason(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	_, err := d.uc.ReportUser(context.Background(), uuid.New(), uuid.New(),
		models.ReportRequest{Reason: "   "})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestReportUser_ReasonTooLong(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	_, err := d.uc.ReportUser(context.Background(), uuid.New(), uuid.New(),
		models.ReportRequest{Reason: strings.Repeat("x", models.MaxReportReasonLen+1)})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestReportRide_Success(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	rideID := uuid.New()
	d.rideRepo.EXPECT().
		GetRideByID(gomock.Any(), rideID).
		Return(&models.Ride{ID: rideID}, nil)
	d.reportRepo.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report *models.Report) error {
			require.NotNil(t, report.RideID)
			assert.Equal(t, rideID, *report.RideID)
			assert.Nil(t, report.ReportedUserID)
			return nil
		})

	_, err := d.uc.ReportRide(context.Background(), uuid.New(), rideID,
		models.ReportRequest{Reason: "unsafe driving"})
	assert.NoError(t, err)
}

func TestReportRide_UnknownRide(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	rideID := uuid.New()
	d.rideRepo.EXPECT().
		GetRideByID(gomock.Any(), rideID).
		Return(nil, apperrors.Wrap(apperrors.ErrNotFound, "ride %s", rideID))

	_, err := d.uc.ReportRide(context.Background(), uuid.New(), rideID,
		models.ReportRequest{Reason: "unsafe driving"})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestListPending_AdminOnly(t *testing.T) {
	d := newTestUC(t)
	defer d.ctrl.Finish()

	_, err := d.uc.ListPending(context.Background(), models.Actor{ID: uuid.New(), Role: models.RoleMember})
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))

	d.reportRepo.EXPECT().
		ListPendingReports(gomock.Any()).
		Return([]*models.Report{{Reason: "no-show"}}, nil)

	reportList, err := d.uc.ListPending(context.Background(), models.Actor{ID: uuid.New(), Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, reportList, 1)
}
