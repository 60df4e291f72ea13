package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/campuspool/campuspool/internal/pkg/middleware"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/utils"
	"github.com/campuspool/campuspool/services/reports"
)

// ReportHandler handles HTTP requests for report intake
type ReportHandler struct {
	reportUC reports.ReportUC
}

// NewReportHandler creates a new report HTTP handler
func NewReportHandler(reportUC reports.ReportUC) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(e *echo.Echo, jwtMiddleware echo.MiddlewareFunc) {
	protected := e.Group("/reports", jwtMiddleware)
	protected.POST("/users/:userID", h.ReportUser)
	protected.POST("/rides/:rideID", h.ReportRide)
	protected.GET("/pending", h.ListPending)
}

// ReportUser files a report against a user
func (h *ReportHandler) ReportUser(c echo.Context) error {
	reportedUserID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req models.ReportRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	actor := middleware.ActorFromContext(c)
	report, err := h.reportUC.ReportUser(c.Request().Context(), actor.ID, reportedUserID, req)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Report filed", report)
}

// ReportRide files a report against a ride
func (h *ReportHandler) ReportRide(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var req models.ReportRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	actor := middleware.ActorFromContext(c)
	report, err := h.reportUC.ReportRide(c.Request().Context(), actor.ID, rideID, req)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Report filed", report)
}

// ListPending returns unresolved reports for admin review
func (h *ReportHandler) ListPending(c echo.Context) error {
	actor := middleware.ActorFromContext(c)
	reportList, err := h.reportUC.ListPending(c.Request().Context(), actor)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", reportList)
}
