package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/campuspool/campuspool/internal/pkg/middleware"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/utils"
	"github.com/campuspool/campuspool/services/bookings"
)

// BookingHandler handles HTTP requests for the booking coordinator
type BookingHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingHandler creates a new booking HTTP handler
func NewBookingHandler(bookingUC bookings.BookingUC) *BookingHandler {
	return &BookingHandler{bookingUC: bookingUC}
}

// RegisterRoutes registers booking routes. All require authentication.
func (h *BookingHandler) RegisterRoutes(e *echo.Echo, jwtMiddleware echo.MiddlewareFunc) {
	rides := e.Group("/rides/:rideID/bookings", jwtMiddleware)
	rides.POST("", h.RequestBooking)
	rides.GET("", h.ListRideBookings)

	protected := e.Group("/bookings", jwtMiddleware)
	protected.GET("", h.ListRiderBookings)
	protected.POST("/:bookingID/approve", h.ApproveBooking)
	protected.POST("/:bookingID/reject", h.RejectBooking)
	protected.POST("/:bookingID/pay", h.PayBooking)
	protected.GET("/:bookingID/receipt", h.Receipt)
	protected.GET("/:bookingID/receipt.pdf", h.ReceiptPDF)
}

// RequestBooking asks for one seat on a ride
func (h *BookingHandler) RequestBooking(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	actor := middleware.ActorFromContext(c)
	booking, err := h.bookingUC.RequestBooking(c.Request().Context(), rideID, actor.ID)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking requested", booking)
}

// ListRideBookings returns all bookings on a ride, driver-only
func (h *BookingHandler) ListRideBookings(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	actor := middleware.ActorFromContext(c)
	bookingList, err := h.bookingUC.ListRideBookings(c.Request().Context(), rideID, actor.ID)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", bookingList)
}

// ListRiderBookings returns the caller's own bookings
func (h *BookingHandler) ListRiderBookings(c echo.Context) error {
	actor := middleware.ActorFromContext(c)
	bookingList, err := h.bookingUC.ListRiderBookings(c.Request().Context(), actor.ID)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", bookingList)
}

// ApproveBooking approves a pending booking
func (h *BookingHandler) ApproveBooking(c echo.Context) error {
	return h.decide(c, h.bookingUC.ApproveBooking, "Booking approved")
}

// RejectBooking rejects a pending booking
func (h *BookingHandler) RejectBooking(c echo.Context) error {
	return h.decide(c, h.bookingUC.RejectBooking, "Booking rejected")
}

func (h *BookingHandler) decide(
	c echo.Context,
	op func(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error),
	message string,
) error {
	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	actor := middleware.ActorFromContext(c)
	booking, err := op(c.Request().Context(), bookingID, actor.ID)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, message, booking)
}

// PayBooking settles an approved booking
func (h *BookingHandler) PayBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	actor := middleware.ActorFromContext(c)
	payment, err := h.bookingUC.PayBooking(c.Request().Context(), bookingID, actor.ID)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment completed", payment)
}

// Receipt returns the payment view for a confirmed booking
func (h *BookingHandler) Receipt(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	actor := middleware.ActorFromContext(c)
	receipt, err := h.bookingUC.Receipt(c.Request().Context(), bookingID, actor.ID)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", receipt)
}

// ReceiptPDF returns the receipt rendered as a PDF document
func (h *BookingHandler) ReceiptPDF(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	actor := middleware.ActorFromContext(c)
	pdfBytes, err := h.bookingUC.ReceiptPDF(c.Request().Context(), bookingID, actor.ID)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="receipt.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", pdfBytes)
}
