// Package user contains the user aggregate: identity, role, and the area
// affiliation that ties a manager to the area they are responsible for.
package user

import (
	"fmt"
	"time"

	vo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/shared/biztime"
)

type User struct {
	id                 uint
	name               string
	email              *vo.Email
	passwordHash       string
	role               vo.Role
	areaID             *uint
	active             bool
	photoURL           *string
	mustChangePassword bool
	createdAt          time.Time
	updatedAt          time.Time
}

func NewUser(name string, email *vo.Email, passwordHash string, role vo.Role) (*User, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &User{
		name:               name,
		email:              email,
		passwordHash:       passwordHash,
		role:               role,
		active:             true,
		mustChangePassword: true,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func ReconstructUser(
	id uint,
	name string,
	email *vo.Email,
	passwordHash string,
	role vo.Role,
	areaID *uint,
	active bool,
	photoURL *string,
	mustChangePassword bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:                 id,
		name:               name,
		email:              email,
		passwordHash:       passwordHash,
		role:               role,
		areaID:             areaID,
		active:             active,
		photoURL:           photoURL,
		mustChangePassword: mustChangePassword,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (u *User) ID() uint               { return u.id }
func (u *User) Name() string           { return u.name }
func (u *User) Email() *vo.Email       { return u.email }
func (u *User) PasswordHash() string   { return u.passwordHash }
func (u *User) Role() vo.Role          { return u.role }
func (u *User) AreaID() *uint          { return u.areaID }
func (u *User) IsActive() bool         { return u.active }
func (u *User) PhotoURL() *string      { return u.photoURL }
func (u *User) MustChangePassword() bool { return u.mustChangePassword }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) UpdatedAt() time.Time   { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	u.name = name
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) SetPhotoURL(url string) {
	u.photoURL = &url
	u.updatedAt = biztime.NowUTC()
}

// ChangeRole switches the user's role. Clearing a manager's area affiliation
// on downgrade is the responsibility of the area responsibility guard, which
// is the only writer of the user/area link.
func (u *User) ChangeRole(role vo.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) ChangePassword(passwordHash string) error {
	if len(passwordHash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.mustChangePassword = false
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) Activate() {
	u.active = true
	u.updatedAt = biztime.NowUTC()
}

func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = biztime.NowUTC()
}

// LinkArea and UnlinkArea mutate the user side of the bidirectional
// area-responsible relationship. They must only be called by the area
// responsibility guard so both sides stay in sync.
func (u *User) LinkArea(areaID uint) error {
	if areaID == 0 {
		return fmt.Errorf("area ID cannot be zero")
	}
	u.areaID = &areaID
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) UnlinkArea() {
	u.areaID = nil
	u.updatedAt = biztime.NowUTC()
}
