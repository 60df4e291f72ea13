package chat

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/services/chat/hub"
)

// ChatUC defines the interface for the ride chat channel business logic
type ChatUC interface {
	// JoinRoom subscribes the client to the ride's room and announces the
	// arrival to everyone in it.
	JoinRoom(ctx context.Context, rideID uuid.UUID, actor models.Actor, sub hub.Subscriber) error
	// LeaveAllRooms drops the client from every room it joined, clearing
	// presence. Called on disconnect.
	LeaveAllRooms(ctx context.Context, subID uuid.UUID)
	// SendMessage persists the message and then broadcasts it to the room,
	// sender included. A persistence failure fails the send and nothing
	// is broadcast.
	SendMessage(ctx context.Context, rideID uuid.UUID, actor models.Actor, text string) error
	// SystemNotice broadcasts a status line into the room without
	// persisting it.
	SystemNotice(ctx context.Context, rideID uuid.UUID, text string)
	History(ctx context.Context, rideID uuid.UUID) ([]*models.Message, error)
}
