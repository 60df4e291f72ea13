package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatTimestampLayout is the wire format for chat message timestamps
const ChatTimestampLayout = "2006-01-02 15:04:05"

// Message is a persisted chat message scoped to a ride
type Message struct {
	ID        uuid.UUID `json:"id" db:"id"`
	RideID    uuid.UUID `json:"ride_id" db:"ride_id"`
	SenderID  uuid.UUID `json:"sender_id" db:"sender_id"`
	Text      string    `json:"text" db:"message"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// ChatMessage is the outbound broadcast payload for a room message
type ChatMessage struct {
	Msg       string `json:"msg"`
	Sender    string `json:"sender"`
	Timestamp string `json:"timestamp"`
}

// ChatStatus is the outbound broadcast payload for a system notice
type ChatStatus struct {
	Msg string `json:"msg"`
}

// JoinRequest is the inbound payload for joining a room
type JoinRequest struct {
	Room string `json:"room"`
}

// SendRequest is the inbound payload for sending a room message
type SendRequest struct {
	Room string `json:"room"`
	Msg  string `json:"msg"`
}
