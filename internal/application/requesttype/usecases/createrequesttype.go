package usecases

import (
	"context"

	"miniticker/internal/application/requesttype/dto"
	"miniticker/internal/domain/area"
	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/requesttype"
	uservo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
	"miniticker/internal/shared/utils"
)

type CreateRequestTypeCommand struct {
	Name      string
	AreaID    uint
	ActorID   uint
	ActorRole uservo.Role
}

type CreateRequestTypeUseCase struct {
	typeRepo  requesttype.Repository
	areaRepo  area.Repository
	eventRepo audit.SystemEventRepository
	txManager TransactionManager
	logger    logger.Interface
}

func NewCreateRequestTypeUseCase(
	typeRepo requesttype.Repository,
	areaRepo area.Repository,
	eventRepo audit.SystemEventRepository,
	txManager TransactionManager,
	log logger.Interface,
) *CreateRequestTypeUseCase {
	return &CreateRequestTypeUseCase{
		typeRepo:  typeRepo,
		areaRepo:  areaRepo,
		eventRepo: eventRepo,
		txManager: txManager,
		logger:    log,
	}
}

func (uc *CreateRequestTypeUseCase) Execute(ctx context.Context, cmd CreateRequestTypeCommand) (*dto.RequestTypeDTO, error) {
	uc.logger.Infow("executing create request type use case",
		"name", cmd.Name, "area_id", cmd.AreaID, "actor_id", cmd.ActorID)

	if !cmd.ActorRole.CanManageCatalog() {
		return nil, errors.NewForbiddenError("role may not manage request types")
	}

	a, err := uc.areaRepo.GetByID(ctx, cmd.AreaID)
	if err != nil {
		return nil, err
	}
	if !a.IsActive() {
		return nil, errors.NewValidationError("area is not active")
	}

	rt, err := requesttype.NewRequestType(utils.SanitizeUserText(cmd.Name), a.ID())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.typeRepo.Save(txCtx, rt); err != nil {
			return err
		}
		event, err := audit.NewSystemEvent(cmd.ActorID, audit.RequestTypeCreated,
			audit.Payload{"name": rt.Name()})
		if err != nil {
			return err
		}
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to create request type", "name", cmd.Name, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to create request type")
	}

	result := dto.FromRequestType(rt)
	return &result, nil
}
