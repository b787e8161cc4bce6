package usecases

import (
	"context"

	"miniticker/internal/application/area/dto"
	"miniticker/internal/domain/area"
	"miniticker/internal/domain/audit"
	uservo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
	"miniticker/internal/shared/utils"
)

type CreateAreaCommand struct {
	Name string
	// Prefix is optional; when empty it is derived from the name.
	Prefix    string
	ActorID   uint
	ActorRole uservo.Role
}

type CreateAreaUseCase struct {
	areaRepo  area.Repository
	eventRepo audit.SystemEventRepository
	txManager TransactionManager
	logger    logger.Interface
}

func NewCreateAreaUseCase(
	areaRepo area.Repository,
	eventRepo audit.SystemEventRepository,
	txManager TransactionManager,
	log logger.Interface,
) *CreateAreaUseCase {
	return &CreateAreaUseCase{
		areaRepo:  areaRepo,
		eventRepo: eventRepo,
		txManager: txManager,
		logger:    log,
	}
}

func (uc *CreateAreaUseCase) Execute(ctx context.Context, cmd CreateAreaCommand) (*dto.AreaDTO, error) {
	uc.logger.Infow("executing create area use case", "name", cmd.Name, "actor_id", cmd.ActorID)

	if !cmd.ActorRole.CanManageCatalog() {
		return nil, errors.NewForbiddenError("role may not manage areas")
	}

	name := utils.SanitizeUserText(cmd.Name)
	prefix := cmd.Prefix
	if prefix == "" {
		prefix = area.GeneratePrefix(name)
	}

	a, err := area.NewArea(name, prefix)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.areaRepo.Save(txCtx, a); err != nil {
			return err
		}
		event, err := audit.NewSystemEvent(cmd.ActorID, audit.AreaCreated, audit.Payload{"name": a.Name()})
		if err != nil {
			return err
		}
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to create area", "name", cmd.Name, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to create area")
	}

	uc.logger.Infow("area created", "area_id", a.ID(), "prefix", a.Prefix())

	result := dto.FromArea(a)
	return &result, nil
}
