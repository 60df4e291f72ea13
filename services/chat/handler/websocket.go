package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/campuspool/campuspool/internal/pkg/constants"
	"github.com/campuspool/campuspool/internal/pkg/jwt"
	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/pkg/observability"
	"github.com/campuspool/campuspool/services/chat"
)

// ChatWSHandler upgrades chat clients and pumps their inbound events into
// the chat use case.
type ChatWSHandler struct {
	chatUC   chat.ChatUC
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewChatWSHandler creates a new chat WebSocket handler
func NewChatWSHandler(chatUC chat.ChatUC, cfg models.JWTConfig) *ChatWSHandler {
	return &ChatWSHandler{
		chatUC: chatUC,
		cfg:    cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RegisterRoutes registers the chat WebSocket route
func (h *ChatWSHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/chat", h.HandleWebSocket)
}

// wsClient is one connected chat client. Writes are serialized; gorilla
// connections allow a single concurrent writer.
type wsClient struct {
	actor models.Actor
	conn  *websocket.Conn
	mu    sync.Mutex
}

func (c *wsClient) ID() uuid.UUID { return c.actor.ID }

func (c *wsClient) Send(event string, data interface{}) error {
	rawData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(models.WSMessage{Event: event, Data: rawData})
}

func (c *wsClient) sendError(code, message string) {
	_ = c.Send(constants.EventError, models.WSErrorMessage{Code: code, Message: message})
}

// HandleWebSocket authenticates the client, upgrades the connection and
// runs the read loop until disconnect.
func (h *ChatWSHandler) HandleWebSocket(c echo.Context) error {
	actor, err := h.authenticate(c)
	if err != nil {
		return err
	}

	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client := &wsClient{actor: actor, conn: ws}
	observability.ChatConnections.Inc()
	defer observability.ChatConnections.Dec()
	defer h.chatUC.LeaveAllRooms(c.Request().Context(), client.ID())

	return h.readLoop(c, client)
}

func (h *ChatWSHandler) authenticate(c echo.Context) (models.Actor, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return models.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return models.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := jwt.ValidateToken(parts[1], h.cfg.Secret)
	if err != nil {
		logger.Warn("Chat token validation failed",
			logger.Err(err))
		return models.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return claims.Actor(), nil
}

func (h *ChatWSHandler) readLoop(c echo.Context, client *wsClient) error {
	for {
		_, msg, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Chat connection error",
					logger.String("user_id", client.ID().String()),
					logger.Err(err))
			}
			return nil
		}

		h.handleEvent(c, client, msg)
	}
}

func (h *ChatWSHandler) handleEvent(c echo.Context, client *wsClient, msg []byte) {
	var wsMsg models.WSMessage
	if err := json.Unmarshal(msg, &wsMsg); err != nil {
		client.sendError(constants.ErrorInvalidFormat, "Invalid message format")
		return
	}

	ctx := c.Request().Context()
	switch wsMsg.Event {
	case constants.EventJoin:
		var req models.JoinRequest
		if err := json.Unmarshal(wsMsg.Data, &req); err != nil {
			client.sendError(constants.ErrorInvalidFormat, "Invalid join payload")
			return
		}
		rideID, err := uuid.Parse(req.Room)
		if err != nil {
			client.sendError(constants.ErrorInvalidFormat, "Invalid room ID")
			return
		}
		if err := h.chatUC.JoinRoom(ctx, rideID, client.actor, client); err != nil {
			client.sendError(constants.ErrorUnauthorized, "Join rejected")
		}

	case constants.EventMessage:
		var req models.SendRequest
		if err := json.Unmarshal(wsMsg.Data, &req); err != nil {
			client.sendError(constants.ErrorInvalidFormat, "Invalid message payload")
			return
		}
		rideID, err := uuid.Parse(req.Room)
		if err != nil {
			client.sendError(constants.ErrorInvalidFormat, "Invalid room ID")
			return
		}
		if err := h.chatUC.SendMessage(ctx, rideID, client.actor, req.Msg); err != nil {
			client.sendError(constants.ErrorInternal, "Message not delivered")
		}

	default:
		client.sendError(constants.ErrorInvalidFormat, "Unknown event type")
	}
}
