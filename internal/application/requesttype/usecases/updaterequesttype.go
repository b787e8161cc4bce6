package usecases

import (
	"context"

	"miniticker/internal/application/requesttype/dto"
	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/requesttype"
	uservo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
	"miniticker/internal/shared/utils"
)

type UpdateRequestTypeCommand struct {
	RequestTypeID uint
	Name          string
	ActorID       uint
	ActorRole     uservo.Role
}

type UpdateRequestTypeUseCase struct {
	typeRepo  requesttype.Repository
	eventRepo audit.SystemEventRepository
	txManager TransactionManager
	logger    logger.Interface
}

func NewUpdateRequestTypeUseCase(
	typeRepo requesttype.Repository,
	eventRepo audit.SystemEventRepository,
	txManager TransactionManager,
	log logger.Interface,
) *UpdateRequestTypeUseCase {
	return &UpdateRequestTypeUseCase{
		typeRepo:  typeRepo,
		eventRepo: eventRepo,
		txManager: txManager,
		logger:    log,
	}
}

func (uc *UpdateRequestTypeUseCase) Execute(ctx context.Context, cmd UpdateRequestTypeCommand) (*dto.RequestTypeDTO, error) {
	uc.logger.Infow("executing update request type use case",
		"request_type_id", cmd.RequestTypeID, "actor_id", cmd.ActorID)

	if !cmd.ActorRole.CanManageCatalog() {
		return nil, errors.NewForbiddenError("role may not manage request types")
	}
	if cmd.RequestTypeID == 0 {
		return nil, errors.NewValidationError("request type ID is required")
	}

	rt, err := uc.typeRepo.GetByID(ctx, cmd.RequestTypeID)
	if err != nil {
		return nil, err
	}

	if err := rt.Rename(utils.SanitizeUserText(cmd.Name)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.typeRepo.Update(txCtx, rt); err != nil {
			return err
		}
		event, err := audit.NewSystemEvent(cmd.ActorID, audit.RequestTypeUpdated,
			audit.Payload{"name": rt.Name()})
		if err != nil {
			return err
		}
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to update request type", "request_type_id", cmd.RequestTypeID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to update request type")
	}

	result := dto.FromRequestType(rt)
	return &result, nil
}
