package usecases

import (
	"context"

	"miniticker/internal/application/user/dto"
	"miniticker/internal/domain/area"
	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/user"
	uservo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
)

type ChangeRoleCommand struct {
	UserID    uint
	NewRole   string
	ActorID   uint
	ActorRole uservo.Role
}

// ChangeRoleUseCase switches a user's role. Demoting a user below manager
// also clears any area responsibility they hold, on both sides of the link,
// so no stale responsible pointer survives the demotion.
type ChangeRoleUseCase struct {
	userRepo  user.Repository
	areaRepo  area.Repository
	eventRepo audit.SystemEventRepository
	txManager TransactionManager
	logger    logger.Interface
}

func NewChangeRoleUseCase(
	userRepo user.Repository,
	areaRepo area.Repository,
	eventRepo audit.SystemEventRepository,
	txManager TransactionManager,
	log logger.Interface,
) *ChangeRoleUseCase {
	return &ChangeRoleUseCase{
		userRepo:  userRepo,
		areaRepo:  areaRepo,
		eventRepo: eventRepo,
		txManager: txManager,
		logger:    log,
	}
}

func (uc *ChangeRoleUseCase) Execute(ctx context.Context, cmd ChangeRoleCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing change role use case",
		"user_id", cmd.UserID, "new_role", cmd.NewRole, "actor_id", cmd.ActorID)

	if !cmd.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("role may not manage users")
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	newRole := uservo.Role(cmd.NewRole)
	if !newRole.IsValid() {
		return nil, errors.NewValidationError("invalid role: " + cmd.NewRole)
	}

	var u *user.User
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		u, err = uc.userRepo.GetByIDForUpdate(txCtx, cmd.UserID)
		if err != nil {
			return err
		}
		if u.Role() == newRole {
			return nil
		}

		if !newRole.CanManageTickets() {
			if err := uc.clearResponsibility(txCtx, u, cmd.ActorID); err != nil {
				return err
			}
		}

		if err := u.ChangeRole(newRole); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.userRepo.Update(txCtx, u); err != nil {
			return err
		}

		event, err := audit.NewSystemEvent(cmd.ActorID, audit.UserRoleChanged,
			audit.Payload{"name": u.Name(), "role": newRole.String()})
		if err != nil {
			return err
		}
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to change role", "user_id", cmd.UserID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to change role")
	}

	result := dto.FromUser(u)
	return &result, nil
}

func (uc *ChangeRoleUseCase) clearResponsibility(ctx context.Context, u *user.User, actorID uint) error {
	a, err := uc.areaRepo.GetByResponsibleID(ctx, u.ID())
	if err != nil {
		return err
	}
	if a == nil {
		if u.AreaID() != nil {
			u.UnlinkArea()
		}
		return nil
	}

	a.ClearResponsible()
	u.UnlinkArea()
	if err := uc.areaRepo.Update(ctx, a); err != nil {
		return err
	}

	event, err := audit.NewSystemEvent(actorID, audit.AreaResponsibleRemoved,
		audit.Payload{"name": u.Name(), "area": a.Name()})
	if err != nil {
		return err
	}
	return uc.eventRepo.Save(ctx, event)
}
