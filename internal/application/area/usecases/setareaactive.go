package usecases

import (
	"context"

	"miniticker/internal/application/area/dto"
	"miniticker/internal/domain/area"
	"miniticker/internal/domain/audit"
	uservo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
)

type SetAreaActiveCommand struct {
	AreaID    uint
	Active    bool
	ActorID   uint
	ActorRole uservo.Role
}

// SetAreaActiveUseCase activates or deactivates an area. A deactivated area
// stops accepting new tickets but keeps its history readable.
type SetAreaActiveUseCase struct {
	areaRepo  area.Repository
	eventRepo audit.SystemEventRepository
	txManager TransactionManager
	logger    logger.Interface
}

func NewSetAreaActiveUseCase(
	areaRepo area.Repository,
	eventRepo audit.SystemEventRepository,
	txManager TransactionManager,
	log logger.Interface,
) *SetAreaActiveUseCase {
	return &SetAreaActiveUseCase{
		areaRepo:  areaRepo,
		eventRepo: eventRepo,
		txManager: txManager,
		logger:    log,
	}
}

func (uc *SetAreaActiveUseCase) Execute(ctx context.Context, cmd SetAreaActiveCommand) (*dto.AreaDTO, error) {
	uc.logger.Infow("executing set area active use case",
		"area_id", cmd.AreaID, "active", cmd.Active, "actor_id", cmd.ActorID)

	if !cmd.ActorRole.CanManageCatalog() {
		return nil, errors.NewForbiddenError("role may not manage areas")
	}
	if cmd.AreaID == 0 {
		return nil, errors.NewValidationError("area ID is required")
	}

	a, err := uc.areaRepo.GetByID(ctx, cmd.AreaID)
	if err != nil {
		return nil, err
	}

	kind := audit.AreaDeactivated
	if cmd.Active {
		a.Activate()
		kind = audit.AreaActivated
	} else {
		a.Deactivate()
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.areaRepo.Update(txCtx, a); err != nil {
			return err
		}
		event, err := audit.NewSystemEvent(cmd.ActorID, kind, audit.Payload{"name": a.Name()})
		if err != nil {
			return err
		}
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to change area state", "area_id", cmd.AreaID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to change area state")
	}

	result := dto.FromArea(a)
	return &result, nil
}
