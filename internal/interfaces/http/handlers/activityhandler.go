package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"miniticker/internal/application/activity/usecases"
	"miniticker/internal/shared/logger"
	"miniticker/internal/shared/utils"
)

type ActivityHandler struct {
	personalFeedUC usecases.PersonalFeedExecutor
	globalFeedUC   usecases.GlobalFeedExecutor
	logger         logger.Interface
}

func NewActivityHandler(
	personalFeedUC usecases.PersonalFeedExecutor,
	globalFeedUC usecases.GlobalFeedExecutor,
) *ActivityHandler {
	return &ActivityHandler{
		personalFeedUC: personalFeedUC,
		globalFeedUC:   globalFeedUC,
		logger:         logger.NewLogger(),
	}
}

// PersonalFeed returns the caller's own activity, newest first.
func (h *ActivityHandler) PersonalFeed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := h.personalFeedUC.Execute(c.Request.Context(), usecases.PersonalFeedQuery{
		UserID: userID,
		Limit:  feedLimit(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "activity retrieved", items)
}

// GlobalFeed returns the supervisory feed, optionally narrowed to one area
// or one user via query parameters.
func (h *ActivityHandler) GlobalFeed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	areaID, ok := queryUint(c, "area_id")
	if !ok {
		return
	}
	targetUserID, ok := queryUint(c, "user_id")
	if !ok {
		return
	}

	items, err := h.globalFeedUC.Execute(c.Request.Context(), usecases.GlobalFeedQuery{
		ActingUserID: userID,
		ActorRole:    currentRole(c),
		AreaID:       areaID,
		TargetUserID: targetUserID,
		Limit:        feedLimit(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "activity retrieved", items)
}

func feedLimit(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return limit
}
