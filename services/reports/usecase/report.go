package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/pkg/observability"
	"github.com/campuspool/campuspool/services/reports"
	"github.com/campuspool/campuspool/services/rides"
	"github.com/campuspool/campuspool/services/users"
)

type reportUC struct {
	cfg        *models.Config
	reportRepo reports.ReportRepo
	userRepo   users.UserRepo
	rideRepo   rides.RideRepo
}

// NewReportUC creates a new report intake use case
func NewReportUC(
	cfg *models.Config,
	reportRepo reports.ReportRepo,
	userRepo users.UserRepo,
	rideRepo rides.RideRepo,
) reports.ReportUC {
	return &reportUC{
		cfg:        cfg,
		reportRepo: reportRepo,
		userRepo:   userRepo,
		rideRepo:   rideRepo,
	}
}

func validateReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return apperrors.Wrap(apperrors.ErrValidation, "reason is required")
	}
	if len(reason) > models.MaxReportReasonLen {
		return apperrors.Wrap(apperrors.ErrValidation,
			"reason exceeds %d characters", models.MaxReportReasonLen)
	}
	return nil
}

// ReportUser files a report against a user
func (uc *reportUC) ReportUser(ctx context.Context, reporterID, reportedUserID uuid.UUID, req models.ReportRequest) (*models.Report, error) {
	if err := validateReason(req.Reason); err != nil {
		return nil, err
	}
	if _, err := uc.userRepo.GetUserByID(ctx, reportedUserID); err != nil {
		return nil, err
	}

	report := &models.Report{
		ReporterID:     reporterID,
		ReportedUserID: &reportedUserID,
		Reason:         req.Reason,
		Description:    req.Description,
		Status:         models.ReportStatusPending,
	}
	return uc.file(ctx, report)
}

// ReportRide files a report against a ride
func (uc *reportUC) ReportRide(ctx context.Context, reporterID, rideID uuid.UUID, req models.ReportRequest) (*models.Report, error) {
	if err := validateReason(req.Reason); err != nil {
		return nil, err
	}
	if _, err := uc.rideRepo.GetRideByID(ctx, rideID); err != nil {
		return nil, err
	}

	report := &models.Report{
		ReporterID:  reporterID,
		RideID:      &rideID,
		Reason:      req.Reason,
		Description: req.Description,
		Status:      models.ReportStatusPending,
	}
	return uc.file(ctx, report)
}

func (uc *reportUC) file(ctx context.Context, report *models.Report) (*models.Report, error) {
	if err := uc.reportRepo.CreateReport(ctx, report); err != nil {
		return nil, err
	}
	observability.ReportsTotal.Inc()

	logger.Info("Report filed",
		logger.String("report_id", report.ID.String()),
		logger.String("reporter_id", report.ReporterID.String()))
	return report, nil
}

// ListPending returns unresolved reports. Admin only.
func (uc *reportUC) ListPending(ctx context.Context, actor models.Actor) ([]*models.Report, error) {
	if actor.Role != models.RoleAdmin {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "admin role required")
	}
	return uc.reportRepo.ListPendingReports(ctx)
}
