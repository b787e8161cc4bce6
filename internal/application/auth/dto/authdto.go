// Package dto defines the transfer shapes of the auth flows.
package dto

import userdto "miniticker/internal/application/user/dto"

type LoginResultDTO struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresIn    int64           `json:"expires_in"`
	User         userdto.UserDTO `json:"user"`
}

type RefreshResultDTO struct {
	AccessToken string `json:"access_token"`
}
