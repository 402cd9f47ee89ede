package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]dto.TicketDTO, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.TicketDTO, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type GetTicketStatsExecutor interface {
	Execute(ctx context.Context, query GetTicketStatsQuery) (*GetTicketStatsResult, error)
}

// TicketCacheStore is the read-through cache used by the ticket read paths.
// The bool on reads reports a hit; dest receives the unmarshaled payload.
type TicketCacheStore interface {
	GetTicket(ctx context.Context, ticketID uint, dest any) (bool, error)
	SetTicket(ctx context.Context, ticketID uint, value any) error
	SetTicketOnCreate(ctx context.Context, ticketID uint, value any) error
	InvalidateTicket(ctx context.Context, ticketID uint) error
	GetAllTickets(ctx context.Context, dest any) (bool, error)
	SetAllTickets(ctx context.Context, value any) error
}
