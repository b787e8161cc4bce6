package mappers

import (
	"fmt"

	"miniticker/internal/domain/user"
	vo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:                 u.ID(),
		Name:               u.Name(),
		Email:              u.Email().String(),
		PasswordHash:       u.PasswordHash(),
		Role:               u.Role().String(),
		AreaID:             u.AreaID(),
		Active:             u.IsActive(),
		PhotoURL:           u.PhotoURL(),
		MustChangePassword: u.MustChangePassword(),
		CreatedAt:          u.CreatedAt(),
		UpdatedAt:          u.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid email in user %d: %w", model.ID, err)
	}
	role, err := vo.NewRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("invalid role in user %d: %w", model.ID, err)
	}

	return user.ReconstructUser(
		model.ID,
		model.Name,
		email,
		model.PasswordHash,
		role,
		model.AreaID,
		model.Active,
		model.PhotoURL,
		model.MustChangePassword,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
