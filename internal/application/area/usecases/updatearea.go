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

type UpdateAreaCommand struct {
	AreaID uint
	Name   string
	// Prefix only affects tickets numbered after the change; existing
	// numbers keep the prefix they were issued under.
	Prefix    string
	ActorID   uint
	ActorRole uservo.Role
}

type UpdateAreaUseCase struct {
	areaRepo  area.Repository
	eventRepo audit.SystemEventRepository
	txManager TransactionManager
	logger    logger.Interface
}

func NewUpdateAreaUseCase(
	areaRepo area.Repository,
	eventRepo audit.SystemEventRepository,
	txManager TransactionManager,
	log logger.Interface,
) *UpdateAreaUseCase {
	return &UpdateAreaUseCase{
		areaRepo:  areaRepo,
		eventRepo: eventRepo,
		txManager: txManager,
		logger:    log,
	}
}

func (uc *UpdateAreaUseCase) Execute(ctx context.Context, cmd UpdateAreaCommand) (*dto.AreaDTO, error) {
	uc.logger.Infow("executing update area use case", "area_id", cmd.AreaID, "actor_id", cmd.ActorID)

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

	if name := utils.SanitizeUserText(cmd.Name); name != "" && name != a.Name() {
		if err := a.Rename(name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Prefix != "" && cmd.Prefix != a.Prefix() {
		if err := a.SetPrefix(cmd.Prefix); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.areaRepo.Update(txCtx, a); err != nil {
			return err
		}
		event, err := audit.NewSystemEvent(cmd.ActorID, audit.AreaUpdated, audit.Payload{"name": a.Name()})
		if err != nil {
			return err
		}
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to update area", "area_id", cmd.AreaID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to update area")
	}

	result := dto.FromArea(a)
	return &result, nil
}
