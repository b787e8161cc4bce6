package usecases

import (
	"context"

	"miniticker/internal/application/area/dto"
	"miniticker/internal/domain/area"
	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/user"
	uservo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
)

type RemoveResponsibleCommand struct {
	AreaID    uint
	UserID    uint
	ActorID   uint
	ActorRole uservo.Role
}

// RemoveResponsibleUseCase clears both sides of the area-responsible link.
// The clear is idempotent: a side that is already empty is left as is, so
// the operation also repairs half-cleared links.
type RemoveResponsibleUseCase struct {
	areaRepo  area.Repository
	userRepo  user.Repository
	eventRepo audit.SystemEventRepository
	txManager TransactionManager
	logger    logger.Interface
}

func NewRemoveResponsibleUseCase(
	areaRepo area.Repository,
	userRepo user.Repository,
	eventRepo audit.SystemEventRepository,
	txManager TransactionManager,
	log logger.Interface,
) *RemoveResponsibleUseCase {
	return &RemoveResponsibleUseCase{
		areaRepo:  areaRepo,
		userRepo:  userRepo,
		eventRepo: eventRepo,
		txManager: txManager,
		logger:    log,
	}
}

func (uc *RemoveResponsibleUseCase) Execute(ctx context.Context, cmd RemoveResponsibleCommand) (*dto.AreaDTO, error) {
	uc.logger.Infow("executing remove responsible use case",
		"area_id", cmd.AreaID, "user_id", cmd.UserID, "actor_id", cmd.ActorID)

	if !cmd.ActorRole.CanManageCatalog() {
		return nil, errors.NewForbiddenError("role may not manage area responsibility")
	}
	if cmd.AreaID == 0 {
		return nil, errors.NewValidationError("area ID is required")
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	a, err := uc.areaRepo.GetByID(ctx, cmd.AreaID)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		u, err := uc.userRepo.GetByIDForUpdate(txCtx, cmd.UserID)
		if err != nil {
			return err
		}

		changed := false
		if resp := a.ResponsibleID(); resp != nil && *resp == u.ID() {
			a.ClearResponsible()
			if err := uc.areaRepo.Update(txCtx, a); err != nil {
				return err
			}
			changed = true
		}
		if linked := u.AreaID(); linked != nil && *linked == a.ID() {
			u.UnlinkArea()
			if err := uc.userRepo.Update(txCtx, u); err != nil {
				return err
			}
			changed = true
		}
		if !changed {
			return nil
		}

		event, err := audit.NewSystemEvent(cmd.ActorID, audit.AreaResponsibleRemoved,
			audit.Payload{"name": u.Name(), "area": a.Name()})
		if err != nil {
			return err
		}
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to remove responsible",
			"area_id", cmd.AreaID, "user_id", cmd.UserID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to remove responsible")
	}

	result := dto.FromArea(a)
	return &result, nil
}
