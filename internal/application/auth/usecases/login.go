package usecases

import (
	"context"
	"strings"

	"miniticker/internal/application/auth/dto"
	userdto "miniticker/internal/application/user/dto"
	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/user"
	"miniticker/internal/infrastructure/ratelimit"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo  user.Repository
	eventRepo audit.SystemEventRepository
	verifier  PasswordVerifier
	tokens    TokenIssuer
	limiter   ratelimit.RateLimiter
	logger    logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	eventRepo audit.SystemEventRepository,
	verifier PasswordVerifier,
	tokens TokenIssuer,
	limiter ratelimit.RateLimiter,
	log logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:  userRepo,
		eventRepo: eventRepo,
		verifier:  verifier,
		tokens:    tokens,
		limiter:   limiter,
		logger:    log,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResultDTO, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	limiterKey := "login:" + email
	allowed, err := uc.limiter.Allow(limiterKey, ratelimit.LoginConfig)
	if err != nil {
		uc.logger.Warnw("rate limiter unavailable, allowing attempt", "error", err)
	} else if !allowed {
		uc.logger.Warnw("login throttled", "email", email)
		return nil, errors.NewForbiddenError("too many login attempts, try again later")
	}

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}
	if !u.IsActive() {
		return nil, errors.NewUnauthorizedError("account is deactivated")
	}

	if err := uc.verifier.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Infow("failed login attempt", "email", email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	pair, err := uc.tokens.Generate(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate tokens")
	}

	event, err := audit.NewSystemEvent(u.ID(), audit.UserLoggedIn, nil)
	if err != nil {
		return nil, errors.NewInternalError("failed to record login")
	}
	if err := uc.eventRepo.Save(ctx, event); err != nil {
		uc.logger.Errorw("failed to record login event", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to record login")
	}

	if err := uc.limiter.Reset(limiterKey); err != nil {
		uc.logger.Debugw("failed to reset login limiter", "email", email, "error", err)
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &dto.LoginResultDTO{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		User:         userdto.FromUser(u),
	}, nil
}
