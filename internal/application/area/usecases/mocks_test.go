package usecases

import (
	"context"
	"fmt"

	"miniticker/internal/domain/area"
	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/ticket"
	"miniticker/internal/domain/user"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
)

type mockAreaRepository struct {
	SaveFunc               func(ctx context.Context, a *area.Area) error
	UpdateFunc             func(ctx context.Context, a *area.Area) error
	DeleteFunc             func(ctx context.Context, id uint) error
	GetByIDFunc            func(ctx context.Context, id uint) (*area.Area, error)
	GetByResponsibleIDFunc func(ctx context.Context, userID uint) (*area.Area, error)
	ListFunc               func(ctx context.Context, includeInactive bool) ([]*area.Area, error)
}

func (m *mockAreaRepository) Save(ctx context.Context, a *area.Area) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return a.SetID(1)
}

func (m *mockAreaRepository) Update(ctx context.Context, a *area.Area) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAreaRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockAreaRepository) GetByID(ctx context.Context, id uint) (*area.Area, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("area not found")
}

func (m *mockAreaRepository) GetByResponsibleID(ctx context.Context, userID uint) (*area.Area, error) {
	if m.GetByResponsibleIDFunc != nil {
		return m.GetByResponsibleIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockAreaRepository) List(ctx context.Context, includeInactive bool) ([]*area.Area, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, includeInactive)
	}
	return nil, nil
}

type mockUserRepository struct {
	UpdateFunc           func(ctx context.Context, u *user.User) error
	GetByIDForUpdateFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	return fmt.Errorf("unexpected call to Save")
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, fmt.Errorf("unexpected call to GetByID")
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
	return nil, fmt.Errorf("unexpected call to List")
}

type mockTicketRepository struct {
	CountOpenByAreaIDFunc func(ctx context.Context, areaID uint) (int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	return fmt.Errorf("unexpected call to Save")
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	return fmt.Errorf("unexpected call to Update")
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter, offset, limit int) ([]*ticket.Ticket, int64, error) {
	return nil, 0, fmt.Errorf("unexpected call to List")
}

func (m *mockTicketRepository) CountOpenByAreaID(ctx context.Context, areaID uint) (int64, error) {
	if m.CountOpenByAreaIDFunc != nil {
		return m.CountOpenByAreaIDFunc(ctx, areaID)
	}
	return 0, nil
}

type mockSystemEventRepository struct {
	SaveFunc func(ctx context.Context, e *audit.SystemEvent) error
	Saved    []*audit.SystemEvent
}

func (m *mockSystemEventRepository) Save(ctx context.Context, e *audit.SystemEvent) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	m.Saved = append(m.Saved, e)
	return e.SetID(uint(len(m.Saved)))
}

func (m *mockSystemEventRepository) ListByActorID(ctx context.Context, actorID uint, limit int) ([]*audit.SystemEvent, error) {
	return nil, fmt.Errorf("unexpected call to ListByActorID")
}

func (m *mockSystemEventRepository) ListRecent(ctx context.Context, limit int) ([]*audit.SystemEvent, error) {
	return nil, fmt.Errorf("unexpected call to ListRecent")
}

type mockTransactionManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
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
