package usecases

import (
	"context"
	"fmt"

	"miniticker/internal/domain/area"
	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/ticket"
	"miniticker/internal/domain/user"
	uservo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
)

type DeleteAreaCommand struct {
	AreaID    uint
	ActorID   uint
	ActorRole uservo.Role
}

// DeleteAreaUseCase removes an area that has no open tickets. The
// responsible user, if any, is unlinked first so no stale affiliation
// survives the delete.
type DeleteAreaUseCase struct {
	areaRepo   area.Repository
	ticketRepo ticket.Repository
	userRepo   user.Repository
	eventRepo  audit.SystemEventRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewDeleteAreaUseCase(
	areaRepo area.Repository,
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	eventRepo audit.SystemEventRepository,
	txManager TransactionManager,
	log logger.Interface,
) *DeleteAreaUseCase {
	return &DeleteAreaUseCase{
		areaRepo:   areaRepo,
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		eventRepo:  eventRepo,
		txManager:  txManager,
		logger:     log,
	}
}

func (uc *DeleteAreaUseCase) Execute(ctx context.Context, cmd DeleteAreaCommand) error {
	uc.logger.Infow("executing delete area use case", "area_id", cmd.AreaID, "actor_id", cmd.ActorID)

	if !cmd.ActorRole.CanManageCatalog() {
		return errors.NewForbiddenError("role may not manage areas")
	}
	if cmd.AreaID == 0 {
		return errors.NewValidationError("area ID is required")
	}

	a, err := uc.areaRepo.GetByID(ctx, cmd.AreaID)
	if err != nil {
		return err
	}

	open, err := uc.ticketRepo.CountOpenByAreaID(ctx, a.ID())
	if err != nil {
		return err
	}
	if open > 0 {
		return errors.NewConflictError(
			fmt.Sprintf("area %s still has %d open tickets", a.Name(), open))
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if responsibleID := a.ResponsibleID(); responsibleID != nil {
			u, err := uc.userRepo.GetByIDForUpdate(txCtx, *responsibleID)
			if err != nil {
				return err
			}
			u.UnlinkArea()
			if err := uc.userRepo.Update(txCtx, u); err != nil {
				return err
			}
		}

		if err := uc.areaRepo.Delete(txCtx, a.ID()); err != nil {
			return err
		}
		event, err := audit.NewSystemEvent(cmd.ActorID, audit.AreaDeleted, audit.Payload{"name": a.Name()})
		if err != nil {
			return err
		}
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete area", "area_id", cmd.AreaID, "error", err)
		if errors.IsAppError(err) {
			return err
		}
		return errors.NewInternalError("failed to delete area")
	}

	uc.logger.Infow("area deleted", "area_id", cmd.AreaID)
	return nil
}
