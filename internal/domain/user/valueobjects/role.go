package valueobjects

import "fmt"

// Role represents the access level of a user.
type Role string

const (
	RoleRequester  Role = "requester"
	RoleManager    Role = "manager"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

var validRoles = map[Role]bool{
	RoleRequester:  true,
	RoleManager:    true,
	RoleAdmin:      true,
	RoleSuperAdmin: true,
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) IsRequester() bool {
	return r == RoleRequester
}

func (r Role) IsManager() bool {
	return r == RoleManager
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// CanManageTickets reports whether the role may triage tickets (assign,
// progress, resolve).
func (r Role) CanManageTickets() bool {
	return r == RoleManager || r.IsAdmin()
}

// CanManageCatalog reports whether the role may administer users, areas and
// request types.
func (r Role) CanManageCatalog() bool {
	return r.IsAdmin()
}
