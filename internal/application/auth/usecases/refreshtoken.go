package usecases

import (
	"context"

	"miniticker/internal/application/auth/dto"
	"miniticker/internal/domain/user"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenUseCase struct {
	userRepo user.Repository
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewRefreshTokenUseCase(
	userRepo user.Repository,
	tokens TokenIssuer,
	log logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   log,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*dto.RefreshResultDTO, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewValidationError("refresh token is required")
	}

	claims, err := uc.tokens.Verify(cmd.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	// The account may have been deactivated since the token was issued.
	u, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}
	if !u.IsActive() {
		return nil, errors.NewUnauthorizedError("account is deactivated")
	}

	accessToken, err := uc.tokens.RefreshAccessToken(claims)
	if err != nil {
		uc.logger.Infow("refused token refresh", "user_id", claims.UserID, "error", err)
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	return &dto.RefreshResultDTO{AccessToken: accessToken}, nil
}
