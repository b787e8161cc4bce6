package usecases

import (
	"context"
	"fmt"

	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/ticket"
	"miniticker/internal/domain/user"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
)

type mockTicketEventRepository struct {
	ListByActorIDFunc func(ctx context.Context, actorID uint, limit int) ([]*audit.TicketEvent, error)
	ListRecentFunc    func(ctx context.Context, limit int) ([]*audit.TicketEvent, error)
}

func (m *mockTicketEventRepository) Save(ctx context.Context, e *audit.TicketEvent) error {
	return fmt.Errorf("unexpected call to Save")
}

func (m *mockTicketEventRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*audit.TicketEvent, error) {
	return nil, fmt.Errorf("unexpected call to ListByTicketID")
}

func (m *mockTicketEventRepository) ListByActorID(ctx context.Context, actorID uint, limit int) ([]*audit.TicketEvent, error) {
	if m.ListByActorIDFunc != nil {
		return m.ListByActorIDFunc(ctx, actorID, limit)
	}
	return nil, nil
}

func (m *mockTicketEventRepository) ListRecent(ctx context.Context, limit int) ([]*audit.TicketEvent, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, nil
}

type mockSystemEventRepository struct {
	ListByActorIDFunc func(ctx context.Context, actorID uint, limit int) ([]*audit.SystemEvent, error)
	ListRecentFunc    func(ctx context.Context, limit int) ([]*audit.SystemEvent, error)
}

func (m *mockSystemEventRepository) Save(ctx context.Context, e *audit.SystemEvent) error {
	return fmt.Errorf("unexpected call to Save")
}

func (m *mockSystemEventRepository) ListByActorID(ctx context.Context, actorID uint, limit int) ([]*audit.SystemEvent, error) {
	if m.ListByActorIDFunc != nil {
		return m.ListByActorIDFunc(ctx, actorID, limit)
	}
	return nil, nil
}

func (m *mockSystemEventRepository) ListRecent(ctx context.Context, limit int) ([]*audit.SystemEvent, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, nil
}

type mockTicketRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	return fmt.Errorf("unexpected call to Save")
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	return fmt.Errorf("unexpected call to Update")
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter, offset, limit int) ([]*ticket.Ticket, int64, error) {
	return nil, 0, fmt.Errorf("unexpected call to List")
}

func (m *mockTicketRepository) CountOpenByAreaID(ctx context.Context, areaID uint) (int64, error) {
	return 0, fmt.Errorf("unexpected call to CountOpenByAreaID")
}

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
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
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByIDForUpdate(ctx context.Context, id uint) (*user.User, error) {
	return nil, fmt.Errorf("unexpected call to GetByIDForUpdate")
}

func (m *mockUserRepository) List(ctx context.Context, includeInactive bool) ([]*user.User, error) {
	return nil, fmt.Errorf("unexpected call to List")
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
