package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/campuspool/campuspool/internal/utils"
	"github.com/campuspool/campuspool/services/chat"
)

// HistoryHandler serves the persisted chat log of a ride
type HistoryHandler struct {
	chatUC chat.ChatUC
}

// NewHistoryHandler creates a new chat history HTTP handler
func NewHistoryHandler(chatUC chat.ChatUC) *HistoryHandler {
	return &HistoryHandler{chatUC: chatUC}
}

// RegisterRoutes registers the chat history route
func (h *HistoryHandler) RegisterRoutes(e *echo.Echo, jwtMiddleware echo.MiddlewareFunc) {
	e.GET("/rides/:rideID/messages", h.History, jwtMiddleware)
}

// History returns the ride's messages in send order
func (h *HistoryHandler) History(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	messages, err := h.chatUC.History(c.Request().Context(), rideID)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", messages)
}
