package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"miniticker/internal/application/auth/usecases"
	"miniticker/internal/shared/logger"
	"miniticker/internal/shared/utils"
)

type AuthHandler struct {
	loginUC        usecases.LoginExecutor
	logoutUC       usecases.LogoutExecutor
	refreshTokenUC usecases.RefreshTokenExecutor
	logger         logger.Interface
}

func NewAuthHandler(
	loginUC usecases.LoginExecutor,
	logoutUC usecases.LogoutExecutor,
	refreshTokenUC usecases.RefreshTokenExecutor,
) *AuthHandler {
	return &AuthHandler{
		loginUC:        loginUC,
		logoutUC:       logoutUC,
		refreshTokenUC: refreshTokenUC,
		logger:         logger.NewLogger(),
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.logoutUC.Execute(c.Request.Context(), usecases.LogoutCommand{UserID: userID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "logout successful", nil)
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for refresh token", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.refreshTokenUC.Execute(c.Request.Context(), usecases.RefreshTokenCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "token refreshed", result)
}
