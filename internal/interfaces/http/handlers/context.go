// Package handlers translates HTTP requests into application commands and
// application results back into JSON responses. Authorization decisions live
// in the use cases; handlers only carry the caller's identity through.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	vo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/shared/constants"
	"miniticker/internal/shared/utils"
)

// currentUserID reads the authenticated caller's id set by the auth
// middleware. A missing id means the route was wired without RequireAuth;
// the request is rejected rather than processed anonymously.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return 0, false
	}
	id, ok := v.(uint)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication context")
		return 0, false
	}
	return id, true
}

func currentRole(c *gin.Context) vo.Role {
	return vo.Role(c.GetString(constants.ContextKeyUserRole))
}

// pathID parses a numeric path parameter such as /tickets/:id.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

// queryUint parses an optional numeric query parameter, returning nil when
// absent.
func queryUint(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid "+name+" parameter")
		return nil, false
	}
	id := uint(v)
	return &id, true
}
