package usecases

import (
	"context"

	"miniticker/internal/application/user/dto"
	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/user"
	uservo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
)

type SetUserActiveCommand struct {
	UserID    uint
	Active    bool
	ActorID   uint
	ActorRole uservo.Role
}

// SetUserActiveUseCase activates or deactivates an account. A deactivated
// user cannot sign in; their tickets and events stay untouched.
type SetUserActiveUseCase struct {
	userRepo  user.Repository
	eventRepo audit.SystemEventRepository
	txManager TransactionManager
	logger    logger.Interface
}

func NewSetUserActiveUseCase(
	userRepo user.Repository,
	eventRepo audit.SystemEventRepository,
	txManager TransactionManager,
	log logger.Interface,
) *SetUserActiveUseCase {
	return &SetUserActiveUseCase{
		userRepo:  userRepo,
		eventRepo: eventRepo,
		txManager: txManager,
		logger:    log,
	}
}

func (uc *SetUserActiveUseCase) Execute(ctx context.Context, cmd SetUserActiveCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing set user active use case",
		"user_id", cmd.UserID, "active", cmd.Active, "actor_id", cmd.ActorID)

	if !cmd.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("role may not manage users")
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.UserID == cmd.ActorID && !cmd.Active {
		return nil, errors.NewValidationError("cannot deactivate your own account")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	kind := audit.UserDeactivated
	if cmd.Active {
		u.Activate()
		kind = audit.UserActivated
	} else {
		u.Deactivate()
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Update(txCtx, u); err != nil {
			return err
		}
		event, err := audit.NewSystemEvent(cmd.ActorID, kind, audit.Payload{"name": u.Name()})
		if err != nil {
			return err
		}
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to change user state", "user_id", cmd.UserID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to change user state")
	}

	result := dto.FromUser(u)
	return &result, nil
}
