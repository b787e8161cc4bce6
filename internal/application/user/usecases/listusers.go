package usecases

import (
	"context"

	"miniticker/internal/application/user/dto"
	"miniticker/internal/domain/user"
	uservo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
)

type ListUsersQuery struct {
	IncludeInactive bool
	ActorRole       uservo.Role
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, log logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: log}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) ([]dto.UserDTO, error) {
	if !query.ActorRole.CanManageTickets() {
		return nil, errors.NewForbiddenError("role may not list users")
	}

	users, err := uc.userRepo.List(ctx, query.IncludeInactive)
	if err != nil {
		return nil, err
	}
	return dto.FromUsers(users), nil
}
