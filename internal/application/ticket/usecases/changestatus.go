package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID uint
	Status   string
}

type ChangeStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	cache      TicketCacheStore
	publisher  ticket.NotificationPublisher
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	cache TicketCacheStore,
	publisher ticket.NotificationPublisher,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		cache:      cache,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing change status use case", "ticket_id", cmd.TicketID, "status", cmd.Status)

	newStatus, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := t.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateTicket(ctx, t.ID()); err != nil {
			uc.logger.Warnw("failed to invalidate ticket cache", "ticket_id", t.ID(), "error", err)
		}
	}

	uc.publisher.PublishToRoom(ticket.RoomForTicket(t.ID()), ticket.NewStatusUpdatedEvent(t))

	uc.logger.Infow("ticket status updated", "ticket_id", t.ID(), "status", t.Status().String())

	return buildTicketDTO(ctx, uc.userRepo, t)
}
