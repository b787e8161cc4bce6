package usecases

import (
	"context"

	"miniticker/internal/application/auth/dto"
	"miniticker/internal/infrastructure/auth"
	uservo "miniticker/internal/domain/user/valueobjects"
)

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResultDTO, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, cmd LogoutCommand) error
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*dto.RefreshResultDTO, error)
}

type TokenIssuer interface {
	Generate(userID uint, role uservo.Role) (*auth.TokenPair, error)
	Verify(tokenString string) (*auth.Claims, error)
	RefreshAccessToken(claims *auth.Claims) (string, error)
}

type PasswordVerifier interface {
	Verify(password, hash string) error
}

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
