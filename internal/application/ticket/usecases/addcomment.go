package usecases

import (
	"context"
	"strings"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID    uint
	AuthorID    uint
	Content     string
	AuthorAdmin bool
}

type AddCommentUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	cache      TicketCacheStore
	publisher  ticket.NotificationPublisher
	logger     logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	cache TicketCacheStore,
	publisher ticket.NotificationPublisher,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		cache:      cache,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)

	if len(strings.TrimSpace(cmd.Content)) < ticket.MinCommentLength {
		return nil, errors.NewValidationError("comment content must be at least 3 characters")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	// Only the ticket owner and admins may comment. Others get a not-found
	// so ticket IDs are not probeable.
	if !cmd.AuthorAdmin && !t.IsOwnedBy(cmd.AuthorID) {
		uc.logger.Warnw("user cannot comment on ticket", "ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	comment, err := ticket.NewComment(t.ID(), cmd.AuthorID, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.SaveComment(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateTicket(ctx, t.ID()); err != nil {
			uc.logger.Warnw("failed to invalidate ticket cache", "ticket_id", t.ID(), "error", err)
		}
	}

	author, err := uc.userRepo.GetByID(ctx, cmd.AuthorID)
	if err != nil {
		return nil, err
	}
	authorRef := dto.ToUserRefDTO(author)

	uc.publisher.PublishToRoom(ticket.RoomForTicket(t.ID()), ticket.NewCommentEvent(comment, author.Name()))

	uc.logger.Infow("comment added", "ticket_id", t.ID(), "comment_id", comment.ID())

	result := dto.ToCommentDTO(comment, authorRef)
	return &result, nil
}
