package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/user"
	uservo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/infrastructure/auth"
	"miniticker/internal/infrastructure/ratelimit"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
)

type mockUserRepository struct {
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	GetByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	return fmt.Errorf("unexpected call to Save")
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	return fmt.Errorf("unexpected call to Update")
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByIDForUpdate(ctx context.Context, id uint) (*user.User, error) {
	return nil, fmt.Errorf("unexpected call to GetByIDForUpdate")
}

func (m *mockUserRepository) List(ctx context.Context, includeInactive bool) ([]*user.User, error) {
	return nil, fmt.Errorf("unexpected call to List")
}

type mockSystemEventRepository struct {
	Saved []*audit.SystemEvent
}

func (m *mockSystemEventRepository) Save(ctx context.Context, e *audit.SystemEvent) error {
	m.Saved = append(m.Saved, e)
	return e.SetID(uint(len(m.Saved)))
}

func (m *mockSystemEventRepository) ListByActorID(ctx context.Context, actorID uint, limit int) ([]*audit.SystemEvent, error) {
	return nil, fmt.Errorf("unexpected call to ListByActorID")
}

func (m *mockSystemEventRepository) ListRecent(ctx context.Context, limit int) ([]*audit.SystemEvent, error) {
	return nil, fmt.Errorf("unexpected call to ListRecent")
}

type mockPasswordVerifier struct{}

func (m *mockPasswordVerifier) Verify(password, hash string) error {
	if "hashed:"+password != hash {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type mockTokenIssuer struct{}

func (m *mockTokenIssuer) Generate(userID uint, role uservo.Role) (*auth.TokenPair, error) {
	return &auth.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 3600}, nil
}

func (m *mockTokenIssuer) Verify(tokenString string) (*auth.Claims, error) {
	return nil, fmt.Errorf("invalid token")
}

func (m *mockTokenIssuer) RefreshAccessToken(claims *auth.Claims) (string, error) {
	return "", fmt.Errorf("invalid token")
}

type mockRateLimiter struct {
	Allowed   bool
	ResetKeys []string
}

func (m *mockRateLimiter) Allow(key string, config ratelimit.RateLimitConfig) (bool, error) {
	return m.Allowed, nil
}

func (m *mockRateLimiter) GetRemaining(key string, window time.Duration) (int64, error) {
	return 0, nil
}

func (m *mockRateLimiter) Reset(key string) error {
	m.ResetKeys = append(m.ResetKeys, key)
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }

func activeUser(t *testing.T, id uint, email string, active bool) *user.User {
	t.Helper()
	emailVO, err := uservo.NewEmail(email)
	require.NoError(t, err)
	u, err := user.ReconstructUser(
		id, "Carol", emailVO, "hashed:secret123", uservo.RoleRequester,
		nil, active, nil, false,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return u
}

func TestLoginUseCase_Execute(t *testing.T) {
	t.Run("valid credentials issue tokens and record the login", func(t *testing.T) {
		users := &mockUserRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				assert.Equal(t, "carol@example.com", email)
				return activeUser(t, 3, "carol@example.com", true), nil
			},
		}
		events := &mockSystemEventRepository{}
		limiter := &mockRateLimiter{Allowed: true}

		uc := NewLoginUseCase(users, events, &mockPasswordVerifier{}, &mockTokenIssuer{}, limiter, &mockLogger{})
		result, err := uc.Execute(context.Background(), LoginCommand{
			Email:    " Carol@Example.com ",
			Password: "secret123",
		})

		require.NoError(t, err)
		assert.Equal(t, "access", result.AccessToken)
		assert.Equal(t, "refresh", result.RefreshToken)
		assert.Equal(t, uint(3), result.User.ID)

		require.Len(t, events.Saved, 1)
		assert.Equal(t, audit.UserLoggedIn, events.Saved[0].Kind())
		assert.Equal(t, []string{"login:carol@example.com"}, limiter.ResetKeys)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		users := &mockUserRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return activeUser(t, 3, "carol@example.com", true), nil
			},
		}

		uc := NewLoginUseCase(users, &mockSystemEventRepository{}, &mockPasswordVerifier{}, &mockTokenIssuer{}, &mockRateLimiter{Allowed: true}, &mockLogger{})
		_, err := uc.Execute(context.Background(), LoginCommand{
			Email:    "carol@example.com",
			Password: "wrong",
		})

		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		uc := NewLoginUseCase(&mockUserRepository{}, &mockSystemEventRepository{}, &mockPasswordVerifier{}, &mockTokenIssuer{}, &mockRateLimiter{Allowed: true}, &mockLogger{})
		_, err := uc.Execute(context.Background(), LoginCommand{
			Email:    "nobody@example.com",
			Password: "secret123",
		})

		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
		assert.Contains(t, err.Error(), "invalid credentials")
	})

	t.Run("deactivated account cannot sign in", func(t *testing.T) {
		users := &mockUserRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return activeUser(t, 3, "carol@example.com", false), nil
			},
		}

		uc := NewLoginUseCase(users, &mockSystemEventRepository{}, &mockPasswordVerifier{}, &mockTokenIssuer{}, &mockRateLimiter{Allowed: true}, &mockLogger{})
		_, err := uc.Execute(context.Background(), LoginCommand{
			Email:    "carol@example.com",
			Password: "secret123",
		})

		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
	})

	t.Run("throttled attempts are refused before touching credentials", func(t *testing.T) {
		uc := NewLoginUseCase(&mockUserRepository{}, &mockSystemEventRepository{}, &mockPasswordVerifier{}, &mockTokenIssuer{}, &mockRateLimiter{Allowed: false}, &mockLogger{})
		_, err := uc.Execute(context.Background(), LoginCommand{
			Email:    "carol@example.com",
			Password: "secret123",
		})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})
}
