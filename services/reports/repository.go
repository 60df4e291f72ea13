package reports

import (
	"context"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// ReportRepo defines the interface for report data access operations
type ReportRepo interface {
	CreateReport(ctx context.Context, report *models.Report) error
	ListPendingReports(ctx context.Context) ([]*models.Report, error)
}
