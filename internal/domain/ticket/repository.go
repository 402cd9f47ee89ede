package ticket

import "context"

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// ListByOwner returns the owner's tickets, newest first.
	ListByOwner(ctx context.Context, ownerID uint) ([]*Ticket, error)
	// ListAll returns every ticket, newest first.
	ListAll(ctx context.Context) ([]*Ticket, error)
	// CountByStatus returns total tickets and the count per status value.
	CountByStatus(ctx context.Context) (total int64, byStatus map[string]int64, err error)

	SaveComment(ctx context.Context, comment *Comment) error
	// ListCommentsByTicketID returns a ticket's comments, oldest first.
	ListCommentsByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}
