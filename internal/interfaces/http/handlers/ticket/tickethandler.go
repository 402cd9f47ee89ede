package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	changeStatusUC usecases.ChangeStatusExecutor
	addCommentUC   usecases.AddCommentExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	addCommentUC usecases.AddCommentExecutor,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		changeStatusUC: changeStatusUC,
		addCommentUC:   addCommentUC,
		logger:         log,
	}
}

// Create handles POST /tickets
func (h *TicketHandler) Create(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for ticket creation", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "title, description, category and priority are required")
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(middleware.CurrentUserID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "ticket created")
}

// Get handles GET /tickets/:id. Non-owners get a not-found so ticket IDs
// cannot be probed.
func (h *TicketHandler) Get(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetTicketQuery{
		TicketID:    ticketID,
		RequesterID: middleware.CurrentUserID(c),
	}
	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetAdmin handles GET /tickets/admin/:id, bypassing the ownership check.
func (h *TicketHandler) GetAdmin(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetTicketQuery{
		TicketID:    ticketID,
		RequesterID: middleware.CurrentUserID(c),
		AdminView:   true,
	}
	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListMy handles GET /tickets/my
func (h *TicketHandler) ListMy(c *gin.Context) {
	query := usecases.ListTicketsQuery{RequesterID: middleware.CurrentUserID(c)}
	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListAll handles GET /tickets
func (h *TicketHandler) ListAll(c *gin.Context) {
	query := usecases.ListTicketsQuery{
		RequesterID: middleware.CurrentUserID(c),
		All:         true,
	}
	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateStatus handles PATCH /tickets/:id
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for status update", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "status is required")
		return
	}

	cmd := usecases.ChangeStatusCommand{TicketID: ticketID, Status: req.Status}
	result, err := h.changeStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket status updated", result)
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for comment", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "content is required")
		return
	}

	cmd := usecases.AddCommentCommand{
		TicketID:    ticketID,
		AuthorID:    middleware.CurrentUserID(c),
		Content:     req.Content,
		AuthorAdmin: middleware.IsAdmin(c),
	}
	result, err := h.addCommentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "comment added")
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket id")
	}
	return uint(id), nil
}
