package usecases

import (
	"context"

	"miniticker/internal/application/area/dto"
)

type CreateAreaExecutor interface {
	Execute(ctx context.Context, cmd CreateAreaCommand) (*dto.AreaDTO, error)
}

type UpdateAreaExecutor interface {
	Execute(ctx context.Context, cmd UpdateAreaCommand) (*dto.AreaDTO, error)
}

type SetAreaActiveExecutor interface {
	Execute(ctx context.Context, cmd SetAreaActiveCommand) (*dto.AreaDTO, error)
}

type DeleteAreaExecutor interface {
	Execute(ctx context.Context, cmd DeleteAreaCommand) error
}

type AssignResponsibleExecutor interface {
	Execute(ctx context.Context, cmd AssignResponsibleCommand) (*dto.AreaDTO, error)
}

type RemoveResponsibleExecutor interface {
	Execute(ctx context.Context, cmd RemoveResponsibleCommand) (*dto.AreaDTO, error)
}

type ListAreasExecutor interface {
	Execute(ctx context.Context, query ListAreasQuery) ([]dto.AreaDTO, error)
}

// TransactionManager runs fn inside a storage transaction. The guard use
// cases rely on it so both sides of the area-responsible link commit
// together with their audit event.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
