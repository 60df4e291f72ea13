package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// MessageRepo implements chat.MessageRepo backed by PostgreSQL
type MessageRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(cfg *models.Config, db *sqlx.DB) *MessageRepo {
	return &MessageRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateMessage persists a chat message
func (r *MessageRepo) CreateMessage(ctx context.Context, message *models.Message) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	query := `
		INSERT INTO messages (id, ride_id, sender_id, message, timestamp)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		message.ID,
		message.RideID,
		message.SenderID,
		message.Text,
		message.Timestamp,
	)
	return err
}

// ListMessagesByRide returns the ride's messages in send order
func (r *MessageRepo) ListMessagesByRide(ctx context.Context, rideID uuid.UUID) ([]*models.Message, error) {
	messages := []*models.Message{}
	query := `
		SELECT id, ride_id, sender_id, message, timestamp
		FROM messages
		WHERE ride_id = $1
		ORDER BY timestamp ASC
	`
	if err := r.db.SelectContext(ctx, &messages, query, rideID); err != nil {
		return nil, err
	}
	return messages, nil
}
