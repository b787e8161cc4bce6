package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"miniticker/internal/application/requesttype/usecases"
	"miniticker/internal/shared/logger"
	"miniticker/internal/shared/utils"
)

type RequestTypeHandler struct {
	createRequestTypeUC    usecases.CreateRequestTypeExecutor
	updateRequestTypeUC    usecases.UpdateRequestTypeExecutor
	setRequestTypeActiveUC usecases.SetRequestTypeActiveExecutor
	deleteRequestTypeUC    usecases.DeleteRequestTypeExecutor
	listRequestTypesUC     usecases.ListRequestTypesExecutor
	logger                 logger.Interface
}

func NewRequestTypeHandler(
	createRequestTypeUC usecases.CreateRequestTypeExecutor,
	updateRequestTypeUC usecases.UpdateRequestTypeExecutor,
	setRequestTypeActiveUC usecases.SetRequestTypeActiveExecutor,
	deleteRequestTypeUC usecases.DeleteRequestTypeExecutor,
	listRequestTypesUC usecases.ListRequestTypesExecutor,
) *RequestTypeHandler {
	return &RequestTypeHandler{
		createRequestTypeUC:    createRequestTypeUC,
		updateRequestTypeUC:    updateRequestTypeUC,
		setRequestTypeActiveUC: setRequestTypeActiveUC,
		deleteRequestTypeUC:    deleteRequestTypeUC,
		listRequestTypesUC:     listRequestTypesUC,
		logger:                 logger.NewLogger(),
	}
}

type CreateRequestTypeRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	AreaID uint   `json:"area_id" binding:"required"`
}

type UpdateRequestTypeRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type SetRequestTypeActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func (h *RequestTypeHandler) CreateRequestType(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateRequestTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create request type", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createRequestTypeUC.Execute(c.Request.Context(), usecases.CreateRequestTypeCommand{
		Name:      req.Name,
		AreaID:    req.AreaID,
		ActorID:   actorID,
		ActorRole: currentRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "request type created successfully")
}

func (h *RequestTypeHandler) UpdateRequestType(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	typeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateRequestTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update request type", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateRequestTypeUC.Execute(c.Request.Context(), usecases.UpdateRequestTypeCommand{
		RequestTypeID: typeID,
		Name:          req.Name,
		ActorID:       actorID,
		ActorRole:     currentRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "request type updated successfully", result)
}

func (h *RequestTypeHandler) SetRequestTypeActive(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	typeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req SetRequestTypeActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set request type active", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.setRequestTypeActiveUC.Execute(c.Request.Context(), usecases.SetRequestTypeActiveCommand{
		RequestTypeID: typeID,
		Active:        *req.Active,
		ActorID:       actorID,
		ActorRole:     currentRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "request type status updated", result)
}

func (h *RequestTypeHandler) DeleteRequestType(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	typeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	err := h.deleteRequestTypeUC.Execute(c.Request.Context(), usecases.DeleteRequestTypeCommand{
		RequestTypeID: typeID,
		ActorID:       actorID,
		ActorRole:     currentRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "request type deleted", nil)
}

func (h *RequestTypeHandler) ListRequestTypes(c *gin.Context) {
	areaID, ok := queryUint(c, "area_id")
	if !ok {
		return
	}
	includeInactive := c.Query("include_inactive") == "true"

	result, err := h.listRequestTypesUC.Execute(c.Request.Context(), usecases.ListRequestTypesQuery{
		AreaID:          areaID,
		IncludeInactive: includeInactive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "request types retrieved", result)
}
