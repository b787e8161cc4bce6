// Package dto defines the transfer shapes the user use cases return to the
// interface layer. Password hashes never leave the application layer.
package dto

import (
	"time"

	"miniticker/internal/domain/user"
)

type UserDTO struct {
	ID                 uint      `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Role               string    `json:"role"`
	AreaID             *uint     `json:"area_id,omitempty"`
	Active             bool      `json:"active"`
	PhotoURL           *string   `json:"photo_url,omitempty"`
	MustChangePassword bool      `json:"must_change_password"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromUser(u *user.User) UserDTO {
	return UserDTO{
		ID:                 u.ID(),
		Name:               u.Name(),
		Email:              u.Email().String(),
		Role:               u.Role().String(),
		AreaID:             u.AreaID(),
		Active:             u.IsActive(),
		PhotoURL:           u.PhotoURL(),
		MustChangePassword: u.MustChangePassword(),
		CreatedAt:          u.CreatedAt(),
		UpdatedAt:          u.UpdatedAt(),
	}
}

func FromUsers(users []*user.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}
