package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"miniticker/internal/application/user/usecases"
	"miniticker/internal/infrastructure/storage"
	"miniticker/internal/shared/constants"
	"miniticker/internal/shared/logger"
	"miniticker/internal/shared/utils"
)

type UserHandler struct {
	createUserUC     usecases.CreateUserExecutor
	updateProfileUC  usecases.UpdateProfileExecutor
	changeRoleUC     usecases.ChangeRoleExecutor
	changePasswordUC usecases.ChangePasswordExecutor
	setUserActiveUC  usecases.SetUserActiveExecutor
	listUsersUC      usecases.ListUsersExecutor
	fileStorage      storage.FileStorage
	logger           logger.Interface
}

func NewUserHandler(
	createUserUC usecases.CreateUserExecutor,
	updateProfileUC usecases.UpdateProfileExecutor,
	changeRoleUC usecases.ChangeRoleExecutor,
	changePasswordUC usecases.ChangePasswordExecutor,
	setUserActiveUC usecases.SetUserActiveExecutor,
	listUsersUC usecases.ListUsersExecutor,
	fileStorage storage.FileStorage,
) *UserHandler {
	return &UserHandler{
		createUserUC:     createUserUC,
		updateProfileUC:  updateProfileUC,
		changeRoleUC:     changeRoleUC,
		changePasswordUC: changePasswordUC,
		setUserActiveUC:  setUserActiveUC,
		listUsersUC:      listUsersUC,
		fileStorage:      fileStorage,
		logger:           logger.NewLogger(),
	}
}

type CreateUserRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Role         string `json:"role" binding:"required,oneof=requester manager admin super_admin"`
	TempPassword string `json:"temp_password" binding:"required,min=8"`
}

// UpdateProfileRequest is bound from multipart form data so the optional
// profile photo travels with the name.
type UpdateProfileRequest struct {
	Name string `form:"name" binding:"required,max=100"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type SetUserActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		TempPassword: req.TempPassword,
		ActorID:      actorID,
		ActorRole:    currentRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "user created successfully")
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid request body for update profile", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	var photoURL string
	if file, err := c.FormFile("photo"); err == nil && file != nil {
		url, err := h.fileStorage.Upload(file, constants.UploadFolderProfiles)
		if err != nil {
			h.logger.Errorw("failed to store profile photo", "error", err, "filename", file.Filename)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to store photo")
			return
		}
		photoURL = url
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID:    userID,
		Name:      req.Name,
		PhotoURL:  photoURL,
		ActorID:   actorID,
		ActorRole: currentRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "profile updated successfully", result)
}

func (h *UserHandler) ChangeRole(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change role", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.changeRoleUC.Execute(c.Request.Context(), usecases.ChangeRoleCommand{
		UserID:    userID,
		NewRole:   req.Role,
		ActorID:   actorID,
		ActorRole: currentRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "role updated", result)
}

// ChangePassword always operates on the caller's own account.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change password", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:          actorID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ActorID:         actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password changed successfully", nil)
}

func (h *UserHandler) SetUserActive(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req SetUserActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set user active", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.setUserActiveUC.Execute(c.Request.Context(), usecases.SetUserActiveCommand{
		UserID:    userID,
		Active:    *req.Active,
		ActorID:   actorID,
		ActorRole: currentRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user status updated", result)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		IncludeInactive: includeInactive,
		ActorRole:       currentRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "users retrieved", result)
}
