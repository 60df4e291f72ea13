package chat

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// MessageRepo defines the interface for chat message persistence
type MessageRepo interface {
	CreateMessage(ctx context.Context, message *models.Message) error
	ListMessagesByRide(ctx context.Context, rideID uuid.UUID) ([]*models.Message, error)
}

// PresenceRepo defines the interface for room presence tracking
type PresenceRepo interface {
	AddMember(ctx context.Context, rideID, userID uuid.UUID) error
	RemoveMember(ctx context.Context, rideID, userID uuid.UUID) error
	Members(ctx context.Context, rideID uuid.UUID) ([]string, error)
}
