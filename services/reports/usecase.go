package reports

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// ReportUC defines the interface for the report intake business logic
type ReportUC interface {
	ReportUser(ctx context.Context, reporterID, reportedUserID uuid.UUID, req models.ReportRequest) (*models.Report, error)
	ReportRide(ctx context.Context, reporterID, rideID uuid.UUID, req models.ReportRequest) (*models.Report, error)
	ListPending(ctx context.Context, actor models.Actor) ([]*models.Report, error)
}
