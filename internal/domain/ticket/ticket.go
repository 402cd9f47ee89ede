package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/biztime"
)

type Ticket struct {
	id          uint
	title       string
	description string
	category    vo.Category
	priority    vo.Priority
	status      vo.TicketStatus
	ownerID     uint
	createdAt   time.Time
	updatedAt   time.Time
	comments    []*Comment
}

// NewTicket creates a ticket for the given owner. Status is always open on
// creation regardless of what the client submitted.
func NewTicket(
	title string,
	description string,
	category vo.Category,
	priority vo.Priority,
	ownerID uint,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		title:       title,
		description: description,
		category:    category,
		priority:    priority,
		status:      vo.StatusOpen,
		ownerID:     ownerID,
		createdAt:   now,
		updatedAt:   now,
		comments:    []*Comment{},
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	category vo.Category,
	priority vo.Priority,
	status vo.TicketStatus,
	ownerID uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		category:    category,
		priority:    priority,
		status:      status,
		ownerID:     ownerID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		comments:    []*Comment{},
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Category() vo.Category {
	return t.category
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) OwnerID() uint {
	return t.ownerID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(t.comments))
	copy(commentsCopy, t.comments)
	return commentsCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus moves the ticket to any valid status. There is no transition
// graph; admins may set any of the four statuses directly.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}

	t.status = newStatus
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}
	if comment.TicketID() != t.id {
		return fmt.Errorf("comment ticket ID mismatch")
	}

	t.comments = append(t.comments, comment)
	return nil
}

// IsOwnedBy reports whether the given user created this ticket. Readers that
// are neither owner nor admin must receive a not-found, never a forbidden.
func (t *Ticket) IsOwnedBy(userID uint) bool {
	return t.ownerID == userID
}
