package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	vo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/infrastructure/auth"
	"miniticker/internal/shared/constants"
	"miniticker/internal/shared/logger"
	"miniticker/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and stores the caller's identity in
// the request context under constants.ContextKeyUserID and
// constants.ContextKeyUserRole.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserRole, string(claims.Role))

		c.Next()
	}
}

// RequireRoles rejects callers whose role is not in the given set. It must
// run after RequireAuth.
func (m *AuthMiddleware) RequireRoles(roles ...vo.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := vo.Role(c.GetString(constants.ContextKeyUserRole))
		for _, r := range roles {
			if current == r {
				c.Next()
				return
			}
		}
		utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
		c.Abort()
	}
}
