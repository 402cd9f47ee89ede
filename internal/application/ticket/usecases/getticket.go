package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID    uint
	RequesterID uint
	// AdminView skips the ownership check. Handlers set it on the admin
	// route only, behind the admin middleware.
	AdminView bool
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	cache      TicketCacheStore
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	cache TicketCacheStore,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		cache:      cache,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if cached := uc.fromCache(ctx, query); cached != nil {
		return cached, nil
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if !uc.canView(t, query) {
		// Not-found instead of forbidden so ticket IDs are not probeable.
		uc.logger.Warnw("user cannot view ticket", "ticket_id", query.TicketID, "requester_id", query.RequesterID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	result, err := buildTicketDTO(ctx, uc.userRepo, t)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetTicket(ctx, t.ID(), result); err != nil {
			uc.logger.Warnw("failed to cache ticket", "ticket_id", t.ID(), "error", err)
		}
	}

	return result, nil
}

// fromCache returns the cached projection if present and visible to the
// requester. The ownership check runs on every hit; a cached entry must not
// leak another user's ticket.
func (uc *GetTicketUseCase) fromCache(ctx context.Context, query GetTicketQuery) *dto.TicketDTO {
	if uc.cache == nil {
		return nil
	}

	var cached dto.TicketDTO
	found, err := uc.cache.GetTicket(ctx, query.TicketID, &cached)
	if err != nil {
		uc.logger.Warnw("ticket cache read failed", "ticket_id", query.TicketID, "error", err)
		return nil
	}
	if !found {
		return nil
	}

	if !query.AdminView && cached.User.ID != query.RequesterID {
		return nil
	}

	return &cached
}

func (uc *GetTicketUseCase) canView(t *ticket.Ticket, query GetTicketQuery) bool {
	return query.AdminView || t.IsOwnedBy(query.RequesterID)
}
