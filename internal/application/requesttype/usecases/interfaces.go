package usecases

import (
	"context"

	"miniticker/internal/application/requesttype/dto"
)

type CreateRequestTypeExecutor interface {
	Execute(ctx context.Context, cmd CreateRequestTypeCommand) (*dto.RequestTypeDTO, error)
}

type UpdateRequestTypeExecutor interface {
	Execute(ctx context.Context, cmd UpdateRequestTypeCommand) (*dto.RequestTypeDTO, error)
}

type SetRequestTypeActiveExecutor interface {
	Execute(ctx context.Context, cmd SetRequestTypeActiveCommand) (*dto.RequestTypeDTO, error)
}

type DeleteRequestTypeExecutor interface {
	Execute(ctx context.Context, cmd DeleteRequestTypeCommand) error
}

type ListRequestTypesExecutor interface {
	Execute(ctx context.Context, query ListRequestTypesQuery) ([]dto.RequestTypeDTO, error)
}

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
