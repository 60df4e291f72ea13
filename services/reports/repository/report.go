package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// ReportRepo implements reports.ReportRepo backed by PostgreSQL
type ReportRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(cfg *models.Config, db *sqlx.DB) *ReportRepo {
	return &ReportRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateReport appends a report
func (r *ReportRepo) CreateReport(ctx context.Context, report *models.Report) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	report.CreatedAt = time.Now()

	query := `
		INSERT INTO reports (id, reporter_id, reported_user_id, ride_id, reason, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		report.ID,
		report.ReporterID,
		report.ReportedUserID,
		report.RideID,
		report.Reason,
		report.Description,
		report.Status,
		report.CreatedAt,
	)
	return err
}

// ListPendingReports returns all unresolved reports, oldest first
func (r *ReportRepo) ListPendingReports(ctx context.Context) ([]*models.Report, error) {
	reports := []*models.Report{}
	query := `
		SELECT id, reporter_id, reported_user_id, ride_id, reason, description, status, created_at
		FROM reports
		WHERE status = $1
		ORDER BY created_at ASC
	`
	if err := r.db.SelectContext(ctx, &reports, query, models.ReportStatusPending); err != nil {
		return nil, err
	}
	return reports, nil
}
