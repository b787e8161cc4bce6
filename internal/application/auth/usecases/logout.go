package usecases

import (
	"context"

	"miniticker/internal/domain/audit"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
)

type LogoutCommand struct {
	UserID uint
}

// LogoutUseCase records the sign-out. Tokens are stateless, so the event is
// the only server-side trace; clients drop the pair themselves.
type LogoutUseCase struct {
	eventRepo audit.SystemEventRepository
	logger    logger.Interface
}

func NewLogoutUseCase(eventRepo audit.SystemEventRepository, log logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{eventRepo: eventRepo, logger: log}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	event, err := audit.NewSystemEvent(cmd.UserID, audit.UserLoggedOut, nil)
	if err != nil {
		return errors.NewInternalError("failed to record logout")
	}
	if err := uc.eventRepo.Save(ctx, event); err != nil {
		uc.logger.Errorw("failed to record logout event", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to record logout")
	}

	uc.logger.Infow("user logged out", "user_id", cmd.UserID)
	return nil
}
