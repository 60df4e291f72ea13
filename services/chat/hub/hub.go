// Package hub keeps the in-process fan-out state for ride chat rooms.
package hub

import (
	"sync"

	"github.com/google/uuid"
)

// Subscriber receives events broadcast to a room. Implementations must be
// safe for concurrent Send calls.
type Subscriber interface {
	ID() uuid.UUID
	Send(event string, data interface{}) error
}

// Hub tracks which subscribers belong to which room. A subscriber may sit
// in several rooms at once; broadcasts reach exactly the target room.
type Hub struct {
	sync.RWMutex
	rooms map[uuid.UUID]map[uuid.UUID]Subscriber
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		rooms: make(map[uuid.UUID]map[uuid.UUID]Subscriber),
	}
}

// Join adds a subscriber to a room, replacing any previous subscription
// under the same subscriber ID.
func (h *Hub) Join(roomID uuid.UUID, sub Subscriber) {
	h.Lock()
	defer h.Unlock()

	room, ok := h.rooms[roomID]
	if !ok {
		room = make(map[uuid.UUID]Subscriber)
		h.rooms[roomID] = room
	}
	room[sub.ID()] = sub
}

// Leave removes a subscriber from one room
func (h *Hub) Leave(roomID uuid.UUID, subID uuid.UUID) {
	h.Lock()
	defer h.Unlock()

	room, ok := h.rooms[roomID]
	if !ok {
		return
	}
	delete(room, subID)
	if len(room) == 0 {
		delete(h.rooms, roomID)
	}
}

// LeaveAll removes a subscriber from every room it joined and returns the
// rooms it was in.
func (h *Hub) LeaveAll(subID uuid.UUID) []uuid.UUID {
	h.Lock()
	defer h.Unlock()

	var left []uuid.UUID
	for roomID, room := range h.rooms {
		if _, ok := room[subID]; !ok {
			continue
		}
		delete(room, subID)
		left = append(left, roomID)
		if len(room) == 0 {
			delete(h.rooms, roomID)
		}
	}
	return left
}

// Broadcast sends an event to every subscriber of the room, the sender
// included. Send failures are returned but do not stop the fan-out.
func (h *Hub) Broadcast(roomID uuid.UUID, event string, data interface{}) []error {
	h.RLock()
	subs := make([]Subscriber, 0, len(h.rooms[roomID]))
	for _, sub := range h.rooms[roomID] {
		subs = append(subs, sub)
	}
	h.RUnlock()

	var errs []error
	for _, sub := range subs {
		if err := sub.Send(event, data); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Members returns the subscriber IDs currently in the room
func (h *Hub) Members(roomID uuid.UUID) []uuid.UUID {
	h.RLock()
	defer h.RUnlock()

	members := make([]uuid.UUID, 0, len(h.rooms[roomID]))
	for id := range h.rooms[roomID] {
		members = append(members, id)
	}
	return members
}
