package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/logger"
)

type GetTicketStatsQuery struct{}

type GetTicketStatsResult struct {
	Total      int64            `json:"total"`
	Open       int64            `json:"open"`
	InProgress int64            `json:"in_progress"`
	Resolved   int64            `json:"resolved"`
	Closed     int64            `json:"closed"`
	ByStatus   map[string]int64 `json:"by_status"`
}

type GetTicketStatsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketStatsUseCase) Execute(ctx context.Context, query GetTicketStatsQuery) (*GetTicketStatsResult, error) {
	total, byStatus, err := uc.ticketRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to get ticket stats", "error", err)
		return nil, err
	}

	// Every status appears in the breakdown even when its count is zero.
	statuses := []vo.TicketStatus{
		vo.StatusOpen,
		vo.StatusInProgress,
		vo.StatusResolved,
		vo.StatusClosed,
	}
	for _, status := range statuses {
		if _, ok := byStatus[status.String()]; !ok {
			byStatus[status.String()] = 0
		}
	}

	result := &GetTicketStatsResult{
		Total:      total,
		Open:       byStatus[vo.StatusOpen.String()],
		InProgress: byStatus[vo.StatusInProgress.String()],
		Resolved:   byStatus[vo.StatusResolved.String()],
		Closed:     byStatus[vo.StatusClosed.String()],
		ByStatus:   byStatus,
	}

	uc.logger.Infow("ticket stats retrieved successfully", "total", result.Total)

	return result, nil
}
