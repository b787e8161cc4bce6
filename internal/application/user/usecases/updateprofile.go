package usecases

import (
	"context"

	"miniticker/internal/application/user/dto"
	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/user"
	uservo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
	"miniticker/internal/shared/utils"
)

type UpdateProfileCommand struct {
	UserID uint
	Name   string
	// PhotoURL replaces the profile photo when set. An empty string leaves
	// the current photo in place.
	PhotoURL  string
	ActorID   uint
	ActorRole uservo.Role
}

// UpdateProfileUseCase lets a user edit their own profile, and admins edit
// anyone's.
type UpdateProfileUseCase struct {
	userRepo  user.Repository
	eventRepo audit.SystemEventRepository
	txManager TransactionManager
	logger    logger.Interface
}

func NewUpdateProfileUseCase(
	userRepo user.Repository,
	eventRepo audit.SystemEventRepository,
	txManager TransactionManager,
	log logger.Interface,
) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo:  userRepo,
		eventRepo: eventRepo,
		txManager: txManager,
		logger:    log,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing update profile use case", "user_id", cmd.UserID, "actor_id", cmd.ActorID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.ActorID != cmd.UserID && !cmd.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("cannot edit another user's profile")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if name := utils.SanitizeUserText(cmd.Name); name != "" && name != u.Name() {
		if err := u.Rename(name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.PhotoURL != "" {
		u.SetPhotoURL(cmd.PhotoURL)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Update(txCtx, u); err != nil {
			return err
		}
		event, err := audit.NewSystemEvent(cmd.ActorID, audit.UserUpdated,
			audit.Payload{"name": u.Name()})
		if err != nil {
			return err
		}
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to update profile", "user_id", cmd.UserID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to update profile")
	}

	result := dto.FromUser(u)
	return &result, nil
}
