package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/campuspool/campuspool/internal/pkg/middleware"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/utils"
	"github.com/campuspool/campuspool/services/ratings"
)

// RatingHandler handles HTTP requests for the rating ledger
type RatingHandler struct {
	ratingUC ratings.RatingUC
}

// NewRatingHandler creates a new rating HTTP handler
func NewRatingHandler(ratingUC ratings.RatingUC) *RatingHandler {
	return &RatingHandler{ratingUC: ratingUC}
}

// RegisterRoutes registers rating routes
func (h *RatingHandler) RegisterRoutes(e *echo.Echo, jwtMiddleware echo.MiddlewareFunc) {
	e.POST("/rides/:rideID/ratings/:rateeID", h.RateUser, jwtMiddleware)
	e.GET("/users/:userID/ratings", h.ListRatings)
}

// RateUser submits a star rating for a ride participant
func (h *RatingHandler) RateUser(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}
	rateeID, err := uuid.Parse(c.Param("rateeID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req models.RateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	actor := middleware.ActorFromContext(c)
	rating, err := h.ratingUC.RateUser(c.Request().Context(), rideID, actor.ID, rateeID, req)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Rating recorded", rating)
}

// ListRatings returns the ratings a user received
func (h *RatingHandler) ListRatings(c echo.Context) error {
	rateeID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	ratingList, err := h.ratingUC.ListRatings(c.Request().Context(), rateeID)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", ratingList)
}
