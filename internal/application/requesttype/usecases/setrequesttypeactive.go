package usecases

import (
	"context"

	"miniticker/internal/application/requesttype/dto"
	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/requesttype"
	uservo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
)

type SetRequestTypeActiveCommand struct {
	RequestTypeID uint
	Active        bool
	ActorID       uint
	ActorRole     uservo.Role
}

// SetRequestTypeActiveUseCase activates or deactivates a request type. A
// deactivated type is hidden from new tickets but keeps existing tickets
// valid.
type SetRequestTypeActiveUseCase struct {
	typeRepo  requesttype.Repository
	eventRepo audit.SystemEventRepository
	txManager TransactionManager
	logger    logger.Interface
}

func NewSetRequestTypeActiveUseCase(
	typeRepo requesttype.Repository,
	eventRepo audit.SystemEventRepository,
	txManager TransactionManager,
	log logger.Interface,
) *SetRequestTypeActiveUseCase {
	return &SetRequestTypeActiveUseCase{
		typeRepo:  typeRepo,
		eventRepo: eventRepo,
		txManager: txManager,
		logger:    log,
	}
}

func (uc *SetRequestTypeActiveUseCase) Execute(ctx context.Context, cmd SetRequestTypeActiveCommand) (*dto.RequestTypeDTO, error) {
	uc.logger.Infow("executing set request type active use case",
		"request_type_id", cmd.RequestTypeID, "active", cmd.Active, "actor_id", cmd.ActorID)

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

	kind := audit.RequestTypeDeactivated
	if cmd.Active {
		rt.Activate()
		kind = audit.RequestTypeActivated
	} else {
		rt.Deactivate()
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.typeRepo.Update(txCtx, rt); err != nil {
			return err
		}
		event, err := audit.NewSystemEvent(cmd.ActorID, kind, audit.Payload{"name": rt.Name()})
		if err != nil {
			return err
		}
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to change request type state",
			"request_type_id", cmd.RequestTypeID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to change request type state")
	}

	result := dto.FromRequestType(rt)
	return &result, nil
}
