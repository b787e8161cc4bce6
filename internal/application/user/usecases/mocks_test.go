package usecases

import (
	"context"
	"fmt"

	"miniticker/internal/domain/area"
	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/user"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc             func(ctx context.Context, u *user.User) error
	UpdateFunc           func(ctx context.Context, u *user.User) error
	GetByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uint) (*user.User, error)
	ListFunc             func(ctx context.Context, includeInactive bool) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByIDForUpdate(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) List(ctx context.Context, includeInactive bool) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, includeInactive)
	}
	return nil, nil
}

type mockAreaRepository struct {
	UpdateFunc             func(ctx context.Context, a *area.Area) error
	GetByResponsibleIDFunc func(ctx context.Context, userID uint) (*area.Area, error)
}

func (m *mockAreaRepository) Save(ctx context.Context, a *area.Area) error {
	return fmt.Errorf("unexpected call to Save")
}

func (m *mockAreaRepository) Update(ctx context.Context, a *area.Area) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAreaRepository) Delete(ctx context.Context, id uint) error {
	return fmt.Errorf("unexpected call to Delete")
}

func (m *mockAreaRepository) GetByID(ctx context.Context, id uint) (*area.Area, error) {
	return nil, errors.NewNotFoundError("area not found")
}

func (m *mockAreaRepository) GetByResponsibleID(ctx context.Context, userID uint) (*area.Area, error) {
	if m.GetByResponsibleIDFunc != nil {
		return m.GetByResponsibleIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockAreaRepository) List(ctx context.Context, includeInactive bool) ([]*area.Area, error) {
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

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	if "hashed:"+password != hash {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type mockWelcomeNotifier struct {
	Calls []string
}

func (m *mockWelcomeNotifier) SendWelcomeEmail(to, name, tempPassword string) error {
	m.Calls = append(m.Calls, to)
	return nil
}

type mockTransactionManager struct{}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
