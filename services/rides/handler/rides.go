package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/campuspool/campuspool/internal/pkg/middleware"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/utils"
	"github.com/campuspool/campuspool/services/rides"
)

// RideHandler handles HTTP requests for ride registry operations
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride HTTP handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{rideUC: rideUC}
}

// RegisterRoutes registers ride routes. Listing is public; mutations require
// authentication.
func (h *RideHandler) RegisterRoutes(e *echo.Echo, jwtMiddleware echo.MiddlewareFunc) {
	e.GET("/rides", h.ListRides)
	e.GET("/rides/:rideID", h.GetRide)

	protected := e.Group("/rides", jwtMiddleware)
	protected.POST("", h.CreateRide)
	protected.PUT("/:rideID", h.UpdateRide)
	protected.DELETE("/:rideID", h.DeleteRide)
	protected.POST("/:rideID/complete", h.CompleteRide)
	protected.POST("/:rideID/cancel", h.CancelRide)
}

// ListRides returns open rides matching the query filter
func (h *RideHandler) ListRides(c echo.Context) error {
	var filter models.RideFilter
	if err := c.Bind(&filter); err != nil {
		return utils.BadRequestResponse(c, "Invalid filter")
	}

	rideList, err := h.rideUC.ListRides(c.Request().Context(), filter)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", rideList)
}

// GetRide returns one ride
func (h *RideHandler) GetRide(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), rideID)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", ride)
}

// CreateRide posts a new ride for the authenticated driver
func (h *RideHandler) CreateRide(c echo.Context) error {
	actor := middleware.ActorFromContext(c)

	var input models.RideInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), actor.ID, input)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride created", ride)
}

// UpdateRide edits a ride owned by the authenticated driver
func (h *RideHandler) UpdateRide(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	actor := middleware.ActorFromContext(c)

	var input models.RideInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	ride, err := h.rideUC.UpdateRide(c.Request().Context(), rideID, actor.ID, input)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride updated", ride)
}

// DeleteRide removes a ride and its dependents
func (h *RideHandler) DeleteRide(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	actor := middleware.ActorFromContext(c)
	if err := h.rideUC.DeleteRide(c.Request().Context(), rideID, actor.ID); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride deleted", nil)
}

// CompleteRide marks a ride completed
func (h *RideHandler) CompleteRide(c echo.Context) error {
	return h.setStatus(c, h.rideUC.CompleteRide, "Ride completed")
}

// CancelRide marks a ride cancelled
func (h *RideHandler) CancelRide(c echo.Context) error {
	return h.setStatus(c, h.rideUC.CancelRide, "Ride cancelled")
}

func (h *RideHandler) setStatus(
	c echo.Context,
	op func(ctx context.Context, rideID, driverID uuid.UUID) error,
	message string,
) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	actor := middleware.ActorFromContext(c)
	if err := op(c.Request().Context(), rideID, actor.ID); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, message, nil)
}
