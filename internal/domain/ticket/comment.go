package ticket

import (
	"fmt"
	"strings"
	"time"

	"helpdesk/internal/shared/biztime"
)

// MinCommentLength is the minimum trimmed content length for a comment.
const MinCommentLength = 3

type Comment struct {
	id        uint
	ticketID  uint
	userID    uint
	content   string
	createdAt time.Time
}

func NewComment(ticketID, userID uint, content string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	trimmed := strings.TrimSpace(content)
	if len(trimmed) < MinCommentLength {
		return nil, fmt.Errorf("content must be at least %d characters", MinCommentLength)
	}
	if len(trimmed) > 5000 {
		return nil, fmt.Errorf("content exceeds maximum length of 5000 characters")
	}

	return &Comment{
		ticketID:  ticketID,
		userID:    userID,
		content:   trimmed,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	userID uint,
	content string,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		userID:    userID,
		content:   content,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) UserID() uint {
	return c.userID
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
