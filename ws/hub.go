package ws

import (
	"sync"

	"github.com/Gauravvedi19/LUCID--Collaborative-Canvas/metrics"
)

// Conn is the transport half of a session: something broadcasts can be
// queued onto. Satisfied by *Client; tests substitute their own.
type Conn interface {
	ID() string
	// Send queues msg for delivery. It must never block; a false
	// return means the message was dropped.
	Send(msg []byte) bool
	Close()
}

// Hub fans outbound events to the connections of a room. Within one
// room, messages are delivered to every connection's queue in the order
// they were handed to the hub; callers get that order by broadcasting
// under the room's serialization point. Delivery to a connection that
// has gone away is silently dropped.
type Hub struct {
	rooms map[string]map[Conn]bool
	mu    sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[Conn]bool),
	}
}

func (h *Hub) Join(roomID string, c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[roomID]
	if !ok {
		room = make(map[Conn]bool)
		h.rooms[roomID] = room
	}

	room[c] = true
	metrics.ConnectedClients.Inc()
}

func (h *Hub) Leave(roomID string, c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[roomID]
	if !ok {
		return
	}
	if !room[c] {
		return
	}

	delete(room, c)
	metrics.ConnectedClients.Dec()
	if len(room) == 0 {
		delete(h.rooms, roomID)
	}
}

// SendTo queues msg for a single connection.
func (h *Hub) SendTo(c Conn, msg []byte) {
	if msg == nil {
		return
	}
	if !c.Send(msg) {
		metrics.DroppedMessages.Inc()
	}
}

// BroadcastAll queues msg for every connection in the room, the sender
// included. Used for full-state resyncs.
func (h *Hub) BroadcastAll(roomID string, msg []byte) {
	h.broadcast(roomID, msg, nil)
}

// BroadcastExcept queues msg for every connection in the room other
// than sender.
func (h *Hub) BroadcastExcept(roomID string, sender Conn, msg []byte) {
	h.broadcast(roomID, msg, sender)
}

func (h *Hub) broadcast(roomID string, msg []byte, except Conn) {
	if msg == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[roomID]
	if !ok {
		return
	}

	for c := range room {
		if c == except {
			continue
		}
		if !c.Send(msg) {
			// slow client: drop, the next full-state event heals it
			metrics.DroppedMessages.Inc()
		}
	}
}

// Stats reports hub-wide room and client counts.
func (h *Hub) Stats() (rooms, clients int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rooms = len(h.rooms)
	for _, room := range h.rooms {
		clients += len(room)
	}
	return rooms, clients
}
