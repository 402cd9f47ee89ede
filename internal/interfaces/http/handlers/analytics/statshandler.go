// Package analytics provides HTTP handlers for ticket analytics.
package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type StatsHandler struct {
	getStatsUC usecases.GetTicketStatsExecutor
	logger     logger.Interface
}

func NewStatsHandler(getStatsUC usecases.GetTicketStatsExecutor, log logger.Interface) *StatsHandler {
	return &StatsHandler{
		getStatsUC: getStatsUC,
		logger:     log,
	}
}

// GetStats handles GET /analytics
func (h *StatsHandler) GetStats(c *gin.Context) {
	result, err := h.getStatsUC.Execute(c.Request.Context(), usecases.GetTicketStatsQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
