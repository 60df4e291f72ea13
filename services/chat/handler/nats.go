package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/campuspool/campuspool/internal/pkg/constants"
	"github.com/campuspool/campuspool/internal/pkg/models"
	natspkg "github.com/campuspool/campuspool/internal/pkg/nats"
	"github.com/campuspool/campuspool/services/chat"
)

// NatsHandler feeds booking events into the chat rooms so riders see
// confirmations without polling.
type NatsHandler struct {
	chatUC    chat.ChatUC
	consumers []*natspkg.Consumer
}

// NewNatsHandler creates a new chat NATS handler
func NewNatsHandler(chatUC chat.ChatUC) *NatsHandler {
	return &NatsHandler{chatUC: chatUC}
}

// Start subscribes to the booking confirmation subject
func (h *NatsHandler) Start(client *natspkg.Client) error {
	consumer, err := natspkg.NewConsumer(client, constants.SubjectBookingConfirmed, constants.QueueGroupChat, h.handleBookingConfirmed)
	if err != nil {
		return err
	}
	h.consumers = append(h.consumers, consumer)
	return nil
}

// Stop unsubscribes all consumers
func (h *NatsHandler) Stop() {
	for _, consumer := range h.consumers {
		_ = consumer.Stop()
	}
}

func (h *NatsHandler) handleBookingConfirmed(message []byte) error {
	var event models.BookingEvent
	if err := json.Unmarshal(message, &event); err != nil {
		return fmt.Errorf("failed to unmarshal booking event: %w", err)
	}

	h.chatUC.SystemNotice(context.Background(), event.RideID,
		"A booking on this ride was confirmed.")
	return nil
}
