package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"miniticker/internal/application/ticket/usecases"
	"miniticker/internal/infrastructure/storage"
	"miniticker/internal/shared/constants"
	"miniticker/internal/shared/logger"
	"miniticker/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	updateTicketUC usecases.UpdateTicketExecutor
	changeStatusUC usecases.ChangeStatusExecutor
	assignTicketUC usecases.AssignTicketExecutor
	addCommentUC   usecases.AddCommentExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	fileStorage    storage.FileStorage
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	addCommentUC usecases.AddCommentExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	fileStorage storage.FileStorage,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		updateTicketUC: updateTicketUC,
		changeStatusUC: changeStatusUC,
		assignTicketUC: assignTicketUC,
		addCommentUC:   addCommentUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		fileStorage:    fileStorage,
		logger:         logger.NewLogger(),
	}
}

// CreateTicketRequest is bound from multipart form data so a single request
// can carry the optional attachment alongside the fields.
type CreateTicketRequest struct {
	Subject       string `form:"subject" binding:"required,max=200"`
	Description   string `form:"description" binding:"required"`
	Priority      string `form:"priority" binding:"required,oneof=low medium high"`
	AreaID        uint   `form:"area_id" binding:"required"`
	RequestTypeID uint   `form:"request_type_id" binding:"required"`
}

type UpdateTicketRequest struct {
	Subject     string `json:"subject" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority" binding:"required,oneof=low medium high"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type AssignTicketRequest struct {
	ManagerID uint `json:"manager_id" binding:"required"`
}

type AddCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	var attachmentURL *string
	if file, err := c.FormFile("attachment"); err == nil && file != nil {
		url, err := h.fileStorage.Upload(file, constants.UploadFolderTickets)
		if err != nil {
			h.logger.Errorw("failed to store ticket attachment", "error", err, "filename", file.Filename)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to store attachment")
			return
		}
		attachmentURL = &url
	}

	cmd := usecases.CreateTicketCommand{
		Subject:       req.Subject,
		Description:   req.Description,
		Priority:      req.Priority,
		AreaID:        req.AreaID,
		RequestTypeID: req.RequestTypeID,
		RequesterID:   actorID,
		AttachmentURL: attachmentURL,
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Ticket, "ticket created successfully")
}

func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	ticketID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    req.Priority,
		ActorID:     actorID,
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket updated successfully", result.Ticket)
}

func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	ticketID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change status", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.ChangeStatusCommand{
		TicketID:  ticketID,
		NewStatus: req.Status,
		ActorID:   actorID,
		ActorRole: currentRole(c),
		Reason:    req.Reason,
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket status updated", result)
}

func (h *TicketHandler) AssignTicket(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	ticketID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.AssignTicketCommand{
		TicketID:  ticketID,
		ManagerID: req.ManagerID,
		ActorID:   actorID,
		ActorRole: currentRole(c),
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket assigned", result)
}

func (h *TicketHandler) AddComment(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	ticketID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.AddCommentCommand{
		TicketID: ticketID,
		AuthorID: actorID,
		Body:     req.Body,
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "comment added")
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	viewerID, ok := currentUserID(c)
	if !ok {
		return
	}
	ticketID, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: ticketID,
		ViewerID: viewerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket retrieved", detail)
}

// ListTickets narrows requesters to their own tickets regardless of the
// filters they pass; managers and admins see everything.
func (h *TicketHandler) ListTickets(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	areaID, ok := queryUint(c, "area_id")
	if !ok {
		return
	}
	requesterID, ok := queryUint(c, "requester_id")
	if !ok {
		return
	}
	managerID, ok := queryUint(c, "manager_id")
	if !ok {
		return
	}

	role := currentRole(c)
	if !role.CanManageTickets() {
		requesterID = &actorID
	}

	var hasManager *bool
	if raw := c.Query("has_manager"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "has_manager must be a boolean")
			return
		}
		hasManager = &v
	}

	page := utils.ParsePagination(c)
	query := usecases.ListTicketsQuery{
		Status:      c.Query("status"),
		Priority:    c.Query("priority"),
		AreaID:      areaID,
		RequesterID: requesterID,
		ManagerID:   managerID,
		HasManager:  hasManager,
		CreatedFrom: c.Query("created_from"),
		CreatedTo:   c.Query("created_to"),
		Search:      c.Query("search"),
		Pagination:  page,
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, page.Page, page.PageSize)
}
