package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"miniticker/internal/application/area/usecases"
	"miniticker/internal/shared/logger"
	"miniticker/internal/shared/utils"
)

type AreaHandler struct {
	createAreaUC        usecases.CreateAreaExecutor
	updateAreaUC        usecases.UpdateAreaExecutor
	setAreaActiveUC     usecases.SetAreaActiveExecutor
	deleteAreaUC        usecases.DeleteAreaExecutor
	assignResponsibleUC usecases.AssignResponsibleExecutor
	removeResponsibleUC usecases.RemoveResponsibleExecutor
	listAreasUC         usecases.ListAreasExecutor
	logger              logger.Interface
}

func NewAreaHandler(
	createAreaUC usecases.CreateAreaExecutor,
	updateAreaUC usecases.UpdateAreaExecutor,
	setAreaActiveUC usecases.SetAreaActiveExecutor,
	deleteAreaUC usecases.DeleteAreaExecutor,
	assignResponsibleUC usecases.AssignResponsibleExecutor,
	removeResponsibleUC usecases.RemoveResponsibleExecutor,
	listAreasUC usecases.ListAreasExecutor,
) *AreaHandler {
	return &AreaHandler{
		createAreaUC:        createAreaUC,
		updateAreaUC:        updateAreaUC,
		setAreaActiveUC:     setAreaActiveUC,
		deleteAreaUC:        deleteAreaUC,
		assignResponsibleUC: assignResponsibleUC,
		removeResponsibleUC: removeResponsibleUC,
		listAreasUC:         listAreasUC,
		logger:              logger.NewLogger(),
	}
}

type CreateAreaRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Prefix string `json:"prefix" binding:"omitempty,areaprefix"`
}

type UpdateAreaRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Prefix string `json:"prefix" binding:"omitempty,areaprefix"`
}

type SetAreaActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type AssignResponsibleRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

func (h *AreaHandler) CreateArea(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create area", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createAreaUC.Execute(c.Request.Context(), usecases.CreateAreaCommand{
		Name:      req.Name,
		Prefix:    req.Prefix,
		ActorID:   actorID,
		ActorRole: currentRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "area created successfully")
}

func (h *AreaHandler) UpdateArea(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	areaID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update area", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateAreaUC.Execute(c.Request.Context(), usecases.UpdateAreaCommand{
		AreaID:    areaID,
		Name:      req.Name,
		Prefix:    req.Prefix,
		ActorID:   actorID,
		ActorRole: currentRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "area updated successfully", result)
}

func (h *AreaHandler) SetAreaActive(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	areaID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req SetAreaActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set area active", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.setAreaActiveUC.Execute(c.Request.Context(), usecases.SetAreaActiveCommand{
		AreaID:    areaID,
		Active:    *req.Active,
		ActorID:   actorID,
		ActorRole: currentRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "area status updated", result)
}

func (h *AreaHandler) DeleteArea(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	areaID, ok := pathID(c, "id")
	if !ok {
		return
	}

	err := h.deleteAreaUC.Execute(c.Request.Context(), usecases.DeleteAreaCommand{
		AreaID:    areaID,
		ActorID:   actorID,
		ActorRole: currentRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "area deleted", nil)
}

func (h *AreaHandler) AssignResponsible(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	areaID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req AssignResponsibleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign responsible", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.assignResponsibleUC.Execute(c.Request.Context(), usecases.AssignResponsibleCommand{
		AreaID:    areaID,
		UserID:    req.UserID,
		ActorID:   actorID,
		ActorRole: currentRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "responsible assigned", result)
}

func (h *AreaHandler) RemoveResponsible(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	areaID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	result, err := h.removeResponsibleUC.Execute(c.Request.Context(), usecases.RemoveResponsibleCommand{
		AreaID:    areaID,
		UserID:    userID,
		ActorID:   actorID,
		ActorRole: currentRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "responsible removed", result)
}

func (h *AreaHandler) ListAreas(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	result, err := h.listAreasUC.Execute(c.Request.Context(), usecases.ListAreasQuery{
		IncludeInactive: includeInactive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "areas retrieved", result)
}
