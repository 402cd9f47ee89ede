package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	db "helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
)

// TicketRepository persists tickets and their comments. Comments always
// belong to a ticket, so they share the store.
type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	t, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	// Load comments in a single query and convert via mapper
	if err := r.loadComments(ctx, t, model.ID); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *TicketRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*ticket.Ticket, error) {
	return r.list(ctx, func(query *gorm.DB) *gorm.DB {
		return query.Where("owner_id = ?", ownerID)
	})
}

func (r *TicketRepository) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	return r.list(ctx, nil)
}

func (r *TicketRepository) list(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})
	if scope != nil {
		query = scope(query)
	}

	var ticketModels []models.TicketModel
	if err := query.Order("created_at DESC").Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}

	return tickets, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context) (int64, map[string]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.TicketModel{}).Count(&total).Error; err != nil {
		return 0, nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	if err := tx.
		Model(&models.TicketModel{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&rows).Error; err != nil {
		return 0, nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	byStatus := make(map[string]int64, len(rows))
	for _, row := range rows {
		byStatus[row.Status] = row.Count
	}

	return total, byStatus, nil
}

func (r *TicketRepository) SaveComment(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) ListCommentsByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var commentModels []models.CommentModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}

	comments := make([]*ticket.Comment, len(commentModels))
	for i, model := range commentModels {
		c, err := r.mapper.CommentToDomain(&model)
		if err != nil {
			return nil, err
		}
		comments[i] = c
	}

	return comments, nil
}

// loadComments queries comments for a ticket and adds them to the domain entity.
func (r *TicketRepository) loadComments(ctx context.Context, t *ticket.Ticket, ticketID uint) error {
	comments, err := r.ListCommentsByTicketID(ctx, ticketID)
	if err != nil {
		return err
	}

	for _, comment := range comments {
		if err := t.AddComment(comment); err != nil {
			return err
		}
	}

	return nil
}
