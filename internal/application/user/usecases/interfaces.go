package usecases

import (
	"context"

	"miniticker/internal/application/user/dto"
)

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error)
}

type ChangeRoleExecutor interface {
	Execute(ctx context.Context, cmd ChangeRoleCommand) (*dto.UserDTO, error)
}

type ChangePasswordExecutor interface {
	Execute(ctx context.Context, cmd ChangePasswordCommand) error
}

type SetUserActiveExecutor interface {
	Execute(ctx context.Context, cmd SetUserActiveCommand) (*dto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) ([]dto.UserDTO, error)
}

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PasswordHasher abstracts the hash algorithm so use case tests do not pay
// bcrypt cost.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// WelcomeNotifier delivers the initial credentials to a new user. Delivery
// failures are logged, never surfaced.
type WelcomeNotifier interface {
	SendWelcomeEmail(to, name, tempPassword string) error
}
