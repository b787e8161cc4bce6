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

type CreateUserCommand struct {
	Name  string
	Email string
	Role  string
	// TempPassword is the initial password the user must change on first
	// login. It travels to the user by email only.
	TempPassword string
	ActorID      uint
	ActorRole    uservo.Role
}

type CreateUserUseCase struct {
	userRepo  user.Repository
	eventRepo audit.SystemEventRepository
	hasher    PasswordHasher
	txManager TransactionManager
	notifier  WelcomeNotifier
	logger    logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	eventRepo audit.SystemEventRepository,
	hasher PasswordHasher,
	txManager TransactionManager,
	notifier WelcomeNotifier,
	log logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:  userRepo,
		eventRepo: eventRepo,
		hasher:    hasher,
		txManager: txManager,
		notifier:  notifier,
		logger:    log,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing create user use case", "email", cmd.Email, "actor_id", cmd.ActorID)

	if !cmd.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("role may not manage users")
	}
	if len(cmd.TempPassword) < 8 {
		return nil, errors.NewValidationError("temporary password must be at least 8 characters")
	}

	role := uservo.Role(cmd.Role)
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role: " + cmd.Role)
	}

	email, err := uservo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	hash, err := uc.hasher.Hash(cmd.TempPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	u, err := user.NewUser(utils.SanitizeUserText(cmd.Name), email, hash, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Save(txCtx, u); err != nil {
			return err
		}
		event, err := audit.NewSystemEvent(cmd.ActorID, audit.UserCreated,
			audit.Payload{"name": u.Name()})
		if err != nil {
			return err
		}
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to create user", "email", cmd.Email, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to create user")
	}

	if err := uc.notifier.SendWelcomeEmail(u.Email().String(), u.Name(), cmd.TempPassword); err != nil {
		uc.logger.Warnw("failed to send welcome email", "user_id", u.ID(), "error", err)
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "role", u.Role())

	result := dto.FromUser(u)
	return &result, nil
}
