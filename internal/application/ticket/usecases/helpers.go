package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
)

// resolveUserRefs loads the given users once each and returns them keyed by
// ID. Users that have since been deleted are simply absent from the map;
// callers fall back to a bare ID reference.
func resolveUserRefs(ctx context.Context, userRepo user.Repository, ids []uint) (map[uint]dto.UserRefDTO, error) {
	refs := make(map[uint]dto.UserRefDTO, len(ids))
	for _, id := range ids {
		if _, ok := refs[id]; ok {
			continue
		}
		u, err := userRepo.GetByID(ctx, id)
		if err != nil {
			continue
		}
		refs[u.ID()] = dto.ToUserRefDTO(u)
	}
	return refs, nil
}

func userRefOrFallback(refs map[uint]dto.UserRefDTO, id uint) dto.UserRefDTO {
	if ref, ok := refs[id]; ok {
		return ref
	}
	return dto.UserRefDTO{ID: id}
}

// buildTicketDTO assembles the full projection of a ticket with its comments
// and denormalized authors.
func buildTicketDTO(ctx context.Context, userRepo user.Repository, t *ticket.Ticket) (*dto.TicketDTO, error) {
	comments := t.Comments()

	ids := make([]uint, 0, len(comments)+1)
	ids = append(ids, t.OwnerID())
	for _, c := range comments {
		ids = append(ids, c.UserID())
	}

	refs, err := resolveUserRefs(ctx, userRepo, ids)
	if err != nil {
		return nil, err
	}

	commentDTOs := make([]dto.CommentDTO, len(comments))
	for i, c := range comments {
		commentDTOs[i] = dto.ToCommentDTO(c, userRefOrFallback(refs, c.UserID()))
	}

	return dto.ToTicketDTO(t, userRefOrFallback(refs, t.OwnerID()), commentDTOs), nil
}

// buildTicketListDTOs assembles list projections without comments.
func buildTicketListDTOs(ctx context.Context, userRepo user.Repository, tickets []*ticket.Ticket) ([]dto.TicketDTO, error) {
	ids := make([]uint, 0, len(tickets))
	for _, t := range tickets {
		ids = append(ids, t.OwnerID())
	}

	refs, err := resolveUserRefs(ctx, userRepo, ids)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TicketDTO, len(tickets))
	for i, t := range tickets {
		items[i] = *dto.ToTicketDTO(t, userRefOrFallback(refs, t.OwnerID()), nil)
	}
	return items, nil
}
