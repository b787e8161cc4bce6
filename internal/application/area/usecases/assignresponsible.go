package usecases

import (
	"context"
	"fmt"

	"miniticker/internal/application/area/dto"
	"miniticker/internal/domain/area"
	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/user"
	uservo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
)

type AssignResponsibleCommand struct {
	AreaID    uint
	UserID    uint
	ActorID   uint
	ActorRole uservo.Role
}

// AssignResponsibleUseCase links a manager to an area. It is the only writer
// of the area-responsible relationship, and it always writes both sides: the
// area's responsible pointer and the user's area affiliation. The user row
// is locked for the duration of the transaction so two concurrent
// assignments of the same user cannot both pass the uniqueness check.
type AssignResponsibleUseCase struct {
	areaRepo  area.Repository
	userRepo  user.Repository
	eventRepo audit.SystemEventRepository
	txManager TransactionManager
	logger    logger.Interface
}

func NewAssignResponsibleUseCase(
	areaRepo area.Repository,
	userRepo user.Repository,
	eventRepo audit.SystemEventRepository,
	txManager TransactionManager,
	log logger.Interface,
) *AssignResponsibleUseCase {
	return &AssignResponsibleUseCase{
		areaRepo:  areaRepo,
		userRepo:  userRepo,
		eventRepo: eventRepo,
		txManager: txManager,
		logger:    log,
	}
}

func (uc *AssignResponsibleUseCase) Execute(ctx context.Context, cmd AssignResponsibleCommand) (*dto.AreaDTO, error) {
	uc.logger.Infow("executing assign responsible use case",
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
		if !u.IsActive() {
			return errors.NewValidationError("user is not active")
		}
		if !u.Role().CanManageTickets() {
			return errors.NewValidationError("only managers can be responsible for an area")
		}

		other, err := uc.areaRepo.GetByResponsibleID(txCtx, u.ID())
		if err != nil {
			return err
		}
		if other != nil && other.ID() != a.ID() {
			return errors.NewConflictError(fmt.Sprintf(
				"user already responsible for area %s; a manager may be linked to only one area at a time",
				other.Name()))
		}

		// Unlink whoever held the area before so their affiliation does
		// not go stale.
		if prev := a.ResponsibleID(); prev != nil && *prev != u.ID() {
			prevUser, err := uc.userRepo.GetByIDForUpdate(txCtx, *prev)
			if err != nil {
				return err
			}
			prevUser.UnlinkArea()
			if err := uc.userRepo.Update(txCtx, prevUser); err != nil {
				return err
			}
		}

		if err := a.SetResponsible(u.ID()); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := u.LinkArea(a.ID()); err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.areaRepo.Update(txCtx, a); err != nil {
			return err
		}
		if err := uc.userRepo.Update(txCtx, u); err != nil {
			return err
		}

		event, err := audit.NewSystemEvent(cmd.ActorID, audit.AreaResponsibleSet,
			audit.Payload{"name": u.Name(), "area": a.Name()})
		if err != nil {
			return err
		}
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to assign responsible",
			"area_id", cmd.AreaID, "user_id", cmd.UserID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to assign responsible")
	}

	uc.logger.Infow("responsible assigned", "area_id", a.ID(), "user_id", cmd.UserID)

	result := dto.FromArea(a)
	return &result, nil
}
