package ticket

import (
	vo "miniticker/internal/domain/ticket/valueobjects"
	uservo "miniticker/internal/domain/user/valueobjects"
)

// statusPermissions restricts who may move a ticket into a given status.
// Statuses absent from the map are open to any role that can otherwise
// perform the transition. New roles or gated statuses are added here without
// touching the transition-validity logic.
var statusPermissions = map[vo.Status][]uservo.Role{
	vo.StatusClosed: {uservo.RoleAdmin, uservo.RoleSuperAdmin},
}

// CanSetStatus reports whether the given role is allowed to move a ticket
// into the requested status.
func CanSetStatus(role uservo.Role, status vo.Status) bool {
	allowed, gated := statusPermissions[status]
	if !gated {
		return true
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
