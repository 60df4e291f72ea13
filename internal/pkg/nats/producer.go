package nats

import (
	"encoding/json"
	"fmt"

	"github.com/campuspool/campuspool/internal/pkg/logger"
)

// Producer handles publishing messages to NATS subjects
type Producer struct {
	client *Client
}

// NewProducer creates a new producer on an existing client
func NewProducer(client *Client) *Producer {
	return &Producer{client: client}
}

// Publish sends a JSON-encoded message to the specified subject
func (p *Producer) Publish(subject string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.client.conn.Publish(subject, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.Debug("Published message", logger.String("subject", subject))
	return nil
}
