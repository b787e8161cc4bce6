package usecases

import (
	"context"

	"miniticker/internal/domain/area"
	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/requesttype"
	"miniticker/internal/domain/ticket"
	"miniticker/internal/domain/user"
	"miniticker/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc              func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc            func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc           func(ctx context.Context, id uint) (*ticket.Ticket, error)
	GetByNumberFunc       func(ctx context.Context, number string) (*ticket.Ticket, error)
	ListFunc              func(ctx context.Context, filter ticket.Filter, offset, limit int) ([]*ticket.Ticket, int64, error)
	CountOpenByAreaIDFunc func(ctx context.Context, areaID uint) (int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter, offset, limit int) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountOpenByAreaID(ctx context.Context, areaID uint) (int64, error) {
	if m.CountOpenByAreaIDFunc != nil {
		return m.CountOpenByAreaIDFunc(ctx, areaID)
	}
	return 0, nil
}

type mockCommentRepository struct {
	SaveFunc           func(ctx context.Context, c *ticket.Comment) error
	ListByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockTicketEventRepository struct {
	SaveFunc           func(ctx context.Context, e *audit.TicketEvent) error
	ListByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*audit.TicketEvent, error)
	ListByActorIDFunc  func(ctx context.Context, actorID uint, limit int) ([]*audit.TicketEvent, error)
	ListRecentFunc     func(ctx context.Context, limit int) ([]*audit.TicketEvent, error)
}

func (m *mockTicketEventRepository) Save(ctx context.Context, e *audit.TicketEvent) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockTicketEventRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*audit.TicketEvent, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
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

type mockUserRepository struct {
	SaveFunc             func(ctx context.Context, u *user.User) error
	UpdateFunc           func(ctx context.Context, u *user.User) error
	GetByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc       func(ctx context.Context, email string) (*user.User, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uint) (*user.User, error)
	ListFunc             func(ctx context.Context, includeInactive bool) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
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
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDForUpdate(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, includeInactive bool) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, includeInactive)
	}
	return nil, nil
}

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
	return nil
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
	return nil, nil
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

type mockRequestTypeRepository struct {
	SaveFunc       func(ctx context.Context, rt *requesttype.RequestType) error
	UpdateFunc     func(ctx context.Context, rt *requesttype.RequestType) error
	DeleteFunc     func(ctx context.Context, id uint) error
	GetByIDFunc    func(ctx context.Context, id uint) (*requesttype.RequestType, error)
	ListByAreaFunc func(ctx context.Context, areaID uint, includeInactive bool) ([]*requesttype.RequestType, error)
	ListFunc       func(ctx context.Context, includeInactive bool) ([]*requesttype.RequestType, error)
}

func (m *mockRequestTypeRepository) Save(ctx context.Context, rt *requesttype.RequestType) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, rt)
	}
	return nil
}

func (m *mockRequestTypeRepository) Update(ctx context.Context, rt *requesttype.RequestType) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, rt)
	}
	return nil
}

func (m *mockRequestTypeRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockRequestTypeRepository) GetByID(ctx context.Context, id uint) (*requesttype.RequestType, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRequestTypeRepository) ListByArea(ctx context.Context, areaID uint, includeInactive bool) ([]*requesttype.RequestType, error) {
	if m.ListByAreaFunc != nil {
		return m.ListByAreaFunc(ctx, areaID, includeInactive)
	}
	return nil, nil
}

func (m *mockRequestTypeRepository) List(ctx context.Context, includeInactive bool) ([]*requesttype.RequestType, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, includeInactive)
	}
	return nil, nil
}

type mockSequenceAllocator struct {
	NextFunc func(ctx context.Context, prefix string, year int) (int, error)
}

func (m *mockSequenceAllocator) Next(ctx context.Context, prefix string, year int) (int, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx, prefix, year)
	}
	return 1, nil
}

// mockTransactionManager runs the function directly; repository mocks do not
// care about transaction boundaries.
type mockTransactionManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockNotifier struct {
	AssignedCalls []string
	StatusCalls   []string
}

func (m *mockNotifier) SendTicketAssignedEmail(to, managerName, ticketNumber, subject string) error {
	m.AssignedCalls = append(m.AssignedCalls, ticketNumber)
	return nil
}

func (m *mockNotifier) SendTicketStatusEmail(to, ticketNumber, newStatus string) error {
	m.StatusCalls = append(m.StatusCalls, ticketNumber)
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
