package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/constants"
	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/pkg/observability"
	"github.com/campuspool/campuspool/services/chat"
	"github.com/campuspool/campuspool/services/chat/hub"
)

type chatUC struct {
	cfg          *models.Config
	messageRepo  chat.MessageRepo
	presenceRepo chat.PresenceRepo
	rooms        *hub.Hub
}

// NewChatUC creates a new ride chat use case
func NewChatUC(
	cfg *models.Config,
	messageRepo chat.MessageRepo,
	presenceRepo chat.PresenceRepo,
	rooms *hub.Hub,
) chat.ChatUC {
	return &chatUC{
		cfg:          cfg,
		messageRepo:  messageRepo,
		presenceRepo: presenceRepo,
		rooms:        rooms,
	}
}

// JoinRoom subscribes the client and announces the arrival. Membership
// requires authentication only, not ride participation.
func (uc *chatUC) JoinRoom(ctx context.Context, rideID uuid.UUID, actor models.Actor, sub hub.Subscriber) error {
	if !actor.Authenticated() {
		return apperrors.Wrap(apperrors.ErrUnauthenticated, "anonymous client cannot join")
	}

	uc.rooms.Join(rideID, sub)
	if err := uc.presenceRepo.AddMember(ctx, rideID, actor.ID); err != nil {
		logger.Warn("Failed to record room presence",
			logger.String("ride_id", rideID.String()),
			logger.Err(err))
	}

	uc.rooms.Broadcast(rideID, constants.EventStatus, models.ChatStatus{
		Msg: fmt.Sprintf("%s has joined the chat.", actor.Name),
	})
	return nil
}

// LeaveAllRooms drops the subscriber from every room and clears presence
func (uc *chatUC) LeaveAllRooms(ctx context.Context, subID uuid.UUID) {
	for _, rideID := range uc.rooms.LeaveAll(subID) {
		if err := uc.presenceRepo.RemoveMember(ctx, rideID, subID); err != nil {
			logger.Warn("Failed to clear room presence",
				logger.String("ride_id", rideID.String()),
				logger.Err(err))
		}
	}
}

// SendMessage persists the message, then broadcasts it to the room. The
// broadcast never happens when persistence fails.
func (uc *chatUC) SendMessage(ctx context.Context, rideID uuid.UUID, actor models.Actor, text string) error {
	if !actor.Authenticated() {
		return apperrors.Wrap(apperrors.ErrUnauthenticated, "anonymous client cannot send")
	}
	if strings.TrimSpace(text) == "" {
		return apperrors.Wrap(apperrors.ErrValidation, "message is empty")
	}

	message := &models.Message{
		RideID:    rideID,
		SenderID:  actor.ID,
		Text:      text,
		Timestamp: time.Now(),
	}
	if err := uc.messageRepo.CreateMessage(ctx, message); err != nil {
		return err
	}
	observability.ChatMessagesTotal.Inc()

	uc.rooms.Broadcast(rideID, constants.EventMessage, models.ChatMessage{
		Msg:       message.Text,
		Sender:    actor.Name,
		Timestamp: message.Timestamp.Format(models.ChatTimestampLayout),
	})
	return nil
}

// SystemNotice pushes a transient status line into the room
func (uc *chatUC) SystemNotice(ctx context.Context, rideID uuid.UUID, text string) {
	uc.rooms.Broadcast(rideID, constants.EventStatus, models.ChatStatus{Msg: text})
}

// History returns the ride's persisted messages in send order
func (uc *chatUC) History(ctx context.Context, rideID uuid.UUID) ([]*models.Message, error) {
	return uc.messageRepo.ListMessagesByRide(ctx, rideID)
}
