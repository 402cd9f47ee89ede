package ticket

import (
	"fmt"
	"time"
)

// Notification event names as delivered to websocket clients.
const (
	EventTicketCreated       = "ticketCreated"
	EventTicketStatusUpdated = "ticketStatusUpdated"
	EventNewComment          = "newComment"
)

// Event is a realtime notification frame. Data is marshaled as-is into the
// frame's data field.
type Event struct {
	Name string
	Data any
}

// NotificationPublisher fans events out to connected websocket clients.
// Publishing is fire and forget; delivery failures never fail the operation
// that produced the event.
type NotificationPublisher interface {
	// PublishToAll delivers the event to every connected client.
	PublishToAll(event Event)
	// PublishToRoom delivers the event to clients that joined the room.
	PublishToRoom(room string, event Event)
}

// RoomForTicket names the per-ticket notification room.
func RoomForTicket(ticketID uint) string {
	return fmt.Sprintf("ticket_%d", ticketID)
}

// CreatedEventData is the ticketCreated payload, broadcast to all clients.
type CreatedEventData struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	OwnerID   uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func NewTicketCreatedEvent(t *Ticket) Event {
	return Event{
		Name: EventTicketCreated,
		Data: CreatedEventData{
			ID:        t.ID(),
			Title:     t.Title(),
			Category:  t.Category().String(),
			Priority:  t.Priority().String(),
			Status:    t.Status().String(),
			OwnerID:   t.OwnerID(),
			CreatedAt: t.CreatedAt(),
		},
	}
}

// StatusUpdatedEventData is the ticketStatusUpdated payload, sent to the
// ticket's room only.
type StatusUpdatedEventData struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

func NewStatusUpdatedEvent(t *Ticket) Event {
	return Event{
		Name: EventTicketStatusUpdated,
		Data: StatusUpdatedEventData{
			ID:     t.ID(),
			Status: t.Status().String(),
		},
	}
}

// CommentEventData is the newComment payload, sent to the ticket's room with
// the author denormalized so clients render without a second fetch.
type CommentEventData struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	Content    string    `json:"content"`
	AuthorID   uint      `json:"user_id"`
	AuthorName string    `json:"user_name"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewCommentEvent(c *Comment, authorName string) Event {
	return Event{
		Name: EventNewComment,
		Data: CommentEventData{
			ID:         c.ID(),
			TicketID:   c.TicketID(),
			Content:    c.Content(),
			AuthorID:   c.UserID(),
			AuthorName: authorName,
			CreatedAt:  c.CreatedAt(),
		},
	}
}
