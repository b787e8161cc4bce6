package usecases

import (
	"context"

	"miniticker/internal/domain/user"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
)

type ChangePasswordCommand struct {
	UserID          uint
	CurrentPassword string
	NewPassword     string
	ActorID         uint
}

// ChangePasswordUseCase lets a user replace their own password. A successful
// change clears the must-change-password flag set at account creation.
type ChangePasswordUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	log logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   log,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	uc.logger.Infow("executing change password use case", "user_id", cmd.UserID)

	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.ActorID != cmd.UserID {
		return errors.NewForbiddenError("cannot change another user's password")
	}
	if len(cmd.NewPassword) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}

	if err := uc.hasher.Verify(cmd.CurrentPassword, u.PasswordHash()); err != nil {
		return errors.NewValidationError("current password is incorrect")
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return errors.NewInternalError("failed to hash password")
	}
	if err := u.ChangePassword(hash); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to change password", "user_id", cmd.UserID, "error", err)
		if errors.IsAppError(err) {
			return err
		}
		return errors.NewInternalError("failed to change password")
	}

	uc.logger.Infow("password changed", "user_id", cmd.UserID)
	return nil
}
