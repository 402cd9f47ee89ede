// Package realtime provides the WebSocket notification hub.
package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

// Frame is the wire format delivered to websocket clients.
type Frame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// ClientConn represents a connected websocket client.
type ClientConn struct {
	Conn        *websocket.Conn
	Send        chan *Frame
	ConnectedAt time.Time
}

// Hub tracks connected clients and their room memberships and fans ticket
// events out to them. Delivery is fire and forget: a client whose send
// buffer is full misses the frame rather than blocking the publisher.
type Hub struct {
	clients map[*ClientConn]struct{}
	rooms   map[string]map[*ClientConn]struct{}
	mu      sync.RWMutex

	logger logger.Interface
}

// NewHub creates a new Hub instance.
func NewHub(log logger.Interface) *Hub {
	return &Hub{
		clients: make(map[*ClientConn]struct{}),
		rooms:   make(map[string]map[*ClientConn]struct{}),
		logger:  log,
	}
}

// Register adds a new client connection to the hub.
func (h *Hub) Register(conn *websocket.Conn) *ClientConn {
	client := &ClientConn{
		Conn:        conn,
		Send:        make(chan *Frame, 256),
		ConnectedAt: time.Now(),
	}

	h.mu.Lock()
	h.clients[client] = struct{}{}
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.Infow("websocket client connected",
		"total_clients", total,
	)

	return client
}

// Unregister removes a client from the hub and from every room it joined.
func (h *Hub) Unregister(client *ClientConn) {
	h.mu.Lock()
	if _, ok := h.clients[client]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client)
	for room, members := range h.rooms {
		delete(members, client)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	total := len(h.clients)
	h.mu.Unlock()

	close(client.Send)

	h.logger.Infow("websocket client disconnected",
		"total_clients", total,
	)
}

// JoinRoom subscribes a client to a room. Joining twice is a no-op.
func (h *Hub) JoinRoom(client *ClientConn, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}

	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*ClientConn]struct{})
		h.rooms[room] = members
	}
	members[client] = struct{}{}
}

// PublishToAll delivers the event to every connected client.
func (h *Hub) PublishToAll(event ticket.Event) {
	frame := &Frame{Event: event.Name, Data: event.Data}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		h.deliver(client, frame, event.Name)
	}
}

// PublishToRoom delivers the event to clients that joined the room.
func (h *Hub) PublishToRoom(room string, event ticket.Event) {
	frame := &Frame{Event: event.Name, Data: event.Data}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[room] {
		h.deliver(client, frame, event.Name)
	}
}

func (h *Hub) deliver(client *ClientConn, frame *Frame, eventName string) {
	select {
	case client.Send <- frame:
	default:
		h.logger.Warnw("dropping frame for slow websocket client",
			"event", eventName,
		)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// RoomSize returns the number of clients in a room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}
