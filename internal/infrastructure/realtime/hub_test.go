package realtime

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

func newTestHub() *Hub {
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewHub(log)
}

func drain(c *ClientConn) []*Frame {
	var frames []*Frame
	for {
		select {
		case f := <-c.Send:
			frames = append(frames, f)
		default:
			return frames
		}
	}
}

func TestHub_RegisterAndUnregister(t *testing.T) {
	hub := newTestHub()

	client := hub.Register(nil)
	assert.Equal(t, 1, hub.ClientCount())

	hub.Unregister(client)
	assert.Equal(t, 0, hub.ClientCount())

	// Closed on unregister so the write pump exits.
	_, ok := <-client.Send
	assert.False(t, ok)
}

func TestHub_Unregister_Twice(t *testing.T) {
	hub := newTestHub()

	client := hub.Register(nil)
	hub.Unregister(client)

	// A second unregister must not close the channel again.
	hub.Unregister(client)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_JoinRoom(t *testing.T) {
	hub := newTestHub()
	room := ticket.RoomForTicket(42)

	client := hub.Register(nil)
	hub.JoinRoom(client, room)
	assert.Equal(t, 1, hub.RoomSize(room))

	// Joining twice is a no-op.
	hub.JoinRoom(client, room)
	assert.Equal(t, 1, hub.RoomSize(room))
}

func TestHub_JoinRoom_UnregisteredClient(t *testing.T) {
	hub := newTestHub()
	room := ticket.RoomForTicket(42)

	client := hub.Register(nil)
	hub.Unregister(client)

	hub.JoinRoom(client, room)
	assert.Equal(t, 0, hub.RoomSize(room))
}

func TestHub_PublishToAll(t *testing.T) {
	hub := newTestHub()

	c1 := hub.Register(nil)
	c2 := hub.Register(nil)

	hub.PublishToAll(ticket.Event{Name: ticket.EventTicketCreated, Data: "payload"})

	for _, c := range []*ClientConn{c1, c2} {
		frames := drain(c)
		require.Len(t, frames, 1)
		assert.Equal(t, ticket.EventTicketCreated, frames[0].Event)
		assert.Equal(t, "payload", frames[0].Data)
	}
}

func TestHub_PublishToRoom(t *testing.T) {
	hub := newTestHub()
	room := ticket.RoomForTicket(42)

	member := hub.Register(nil)
	outsider := hub.Register(nil)
	hub.JoinRoom(member, room)

	hub.PublishToRoom(room, ticket.Event{Name: "newComment", Data: "payload"})

	assert.Len(t, drain(member), 1)
	assert.Len(t, drain(outsider), 0)
}

func TestHub_PublishToRoom_EmptyRoom(t *testing.T) {
	hub := newTestHub()

	// No members; must not panic.
	hub.PublishToRoom(ticket.RoomForTicket(404), ticket.Event{Name: "newComment"})
}

func TestHub_SlowClientDropsFrames(t *testing.T) {
	hub := newTestHub()

	client := hub.Register(nil)
	for i := 0; i < cap(client.Send); i++ {
		client.Send <- &Frame{Event: "filler"}
	}

	// The buffer is full; delivery must not block.
	hub.PublishToAll(ticket.Event{Name: ticket.EventTicketCreated})

	assert.Len(t, drain(client), cap(client.Send))
}

func TestHub_UnregisterLeavesRooms(t *testing.T) {
	hub := newTestHub()
	room := ticket.RoomForTicket(42)

	member := hub.Register(nil)
	other := hub.Register(nil)
	hub.JoinRoom(member, room)
	hub.JoinRoom(other, room)

	hub.Unregister(member)
	assert.Equal(t, 1, hub.RoomSize(room))

	hub.Unregister(other)
	assert.Equal(t, 0, hub.RoomSize(room))
}
