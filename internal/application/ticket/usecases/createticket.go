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

type CreateTicketCommand struct {
	Title       string
	Description string
	Category    string
	Priority    string
	OwnerID     uint
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	cache      TicketCacheStore
	publisher  ticket.NotificationPublisher
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	cache TicketCacheStore,
	publisher ticket.NotificationPublisher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		cache:      cache,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "owner_id", cmd.OwnerID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		vo.Category(cmd.Category),
		vo.Priority(cmd.Priority),
		cmd.OwnerID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	result, err := buildTicketDTO(ctx, uc.userRepo, newTicket)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetTicketOnCreate(ctx, newTicket.ID(), result); err != nil {
			uc.logger.Warnw("failed to cache created ticket", "ticket_id", newTicket.ID(), "error", err)
		}
	}

	uc.publisher.PublishToAll(ticket.NewTicketCreatedEvent(newTicket))

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return result, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}

	if len(cmd.Title) > 200 {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}

	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}

	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}

	if cmd.OwnerID == 0 {
		return errors.NewValidationError("owner ID is required")
	}

	if !vo.Category(cmd.Category).IsValid() {
		return errors.NewValidationError("invalid category")
	}

	if !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}

	return nil
}
