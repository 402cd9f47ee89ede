package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	RequesterID uint
	// All lists every ticket instead of the requester's own. Admin only;
	// the result is served from the shared list cache when warm.
	All bool
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	cache      TicketCacheStore
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	cache TicketCacheStore,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		cache:      cache,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]dto.TicketDTO, error) {
	if query.All {
		return uc.listAll(ctx)
	}
	return uc.listOwn(ctx, query.RequesterID)
}

func (uc *ListTicketsUseCase) listOwn(ctx context.Context, ownerID uint) ([]dto.TicketDTO, error) {
	tickets, err := uc.ticketRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "owner_id", ownerID, "error", err)
		return nil, err
	}

	return buildTicketListDTOs(ctx, uc.userRepo, tickets)
}

func (uc *ListTicketsUseCase) listAll(ctx context.Context) ([]dto.TicketDTO, error) {
	if uc.cache != nil {
		var cached []dto.TicketDTO
		found, err := uc.cache.GetAllTickets(ctx, &cached)
		if err != nil {
			uc.logger.Warnw("ticket list cache read failed", "error", err)
		} else if found {
			return cached, nil
		}
	}

	tickets, err := uc.ticketRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list all tickets", "error", err)
		return nil, err
	}

	items, err := buildTicketListDTOs(ctx, uc.userRepo, tickets)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetAllTickets(ctx, items); err != nil {
			uc.logger.Warnw("failed to cache ticket list", "error", err)
		}
	}

	return items, nil
}
