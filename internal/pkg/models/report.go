package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxReportReasonLen bounds the reason field of a report
const MaxReportReasonLen = 256

// ReportStatus represents the status of an abuse or dispute report
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusResolved ReportStatus = "resolved"
)

// Report is an append-only abuse/dispute intake record. Either
// ReportedUserID or RideID is set depending on the report target.
type Report struct {
	ID             uuid.UUID    `json:"id" db:"id"`
	ReporterID     uuid.UUID    `json:"reporter_id" db:"reporter_id"`
	ReportedUserID *uuid.UUID   `json:"reported_user_id,omitempty" db:"reported_user_id"`
	RideID         *uuid.UUID   `json:"ride_id,omitempty" db:"ride_id"`
	Reason         string       `json:"reason" db:"reason"`
	Description    string       `json:"description,omitempty" db:"description"`
	Status         ReportStatus `json:"status" db:"status"`
	CreatedAt      time.Time    `json:"created_at" db:"created_at"`
}

// ReportRequest is the payload for filing a report
type ReportRequest struct {
	Reason      string `json:"reason"`
	Description string `json:"description"`
}
