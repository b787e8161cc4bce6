package usecases

import (
	"context"

	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/requesttype"
	uservo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
)

type DeleteRequestTypeCommand struct {
	RequestTypeID uint
	ActorID       uint
	ActorRole     uservo.Role
}

type DeleteRequestTypeUseCase struct {
	typeRepo  requesttype.Repository
	eventRepo audit.SystemEventRepository
	txManager TransactionManager
	logger    logger.Interface
}

func NewDeleteRequestTypeUseCase(
	typeRepo requesttype.Repository,
	eventRepo audit.SystemEventRepository,
	txManager TransactionManager,
	log logger.Interface,
) *DeleteRequestTypeUseCase {
	return &DeleteRequestTypeUseCase{
		typeRepo:  typeRepo,
		eventRepo: eventRepo,
		txManager: txManager,
		logger:    log,
	}
}

func (uc *DeleteRequestTypeUseCase) Execute(ctx context.Context, cmd DeleteRequestTypeCommand) error {
	uc.logger.Infow("executing delete request type use case",
		"request_type_id", cmd.RequestTypeID, "actor_id", cmd.ActorID)

	if !cmd.ActorRole.CanManageCatalog() {
		return errors.NewForbiddenError("role may not manage request types")
	}
	if cmd.RequestTypeID == 0 {
		return errors.NewValidationError("request type ID is required")
	}

	rt, err := uc.typeRepo.GetByID(ctx, cmd.RequestTypeID)
	if err != nil {
		return err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.typeRepo.Delete(txCtx, rt.ID()); err != nil {
			return err
		}
		event, err := audit.NewSystemEvent(cmd.ActorID, audit.RequestTypeDeleted,
			audit.Payload{"name": rt.Name()})
		if err != nil {
			return err
		}
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete request type",
			"request_type_id", cmd.RequestTypeID, "error", err)
		if errors.IsAppError(err) {
			return err
		}
		return errors.NewInternalError("failed to delete request type")
	}

	return nil
}
