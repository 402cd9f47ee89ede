package dto

import (
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
)

// UserRefDTO is the denormalized author projection embedded in tickets and
// comments. The password hash never appears here.
type UserRefDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CommentDTO struct {
	ID        uint       `json:"id"`
	TicketID  uint       `json:"ticket_id"`
	Content   string     `json:"content"`
	User      UserRefDTO `json:"user"`
	CreatedAt time.Time  `json:"created_at"`
}

type TicketDTO struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Priority    string       `json:"priority"`
	Status      string       `json:"status"`
	User        UserRefDTO   `json:"user"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Comments    []CommentDTO `json:"comments,omitempty"`
}

func ToUserRefDTO(u *user.User) UserRefDTO {
	return UserRefDTO{
		ID:    u.ID(),
		Name:  u.Name(),
		Email: u.Email(),
	}
}

func ToCommentDTO(c *ticket.Comment, author UserRefDTO) CommentDTO {
	return CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		Content:   c.Content(),
		User:      author,
		CreatedAt: c.CreatedAt(),
	}
}

func ToTicketDTO(t *ticket.Ticket, owner UserRefDTO, comments []CommentDTO) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Category:    t.Category().String(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		User:        owner,
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		Comments:    comments,
	}
}
