package usecases

import (
	"context"
	"fmt"

	"miniticker/internal/domain/area"
	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/requesttype"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
)

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
	return rt.SetID(1)
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
	return nil, errors.NewNotFoundError("request type not found")
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

type mockAreaRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*area.Area, error)
}

func (m *mockAreaRepository) Save(ctx context.Context, a *area.Area) error {
	return fmt.Errorf("unexpected call to Save")
}

func (m *mockAreaRepository) Update(ctx context.Context, a *area.Area) error {
	return fmt.Errorf("unexpected call to Update")
}

func (m *mockAreaRepository) Delete(ctx context.Context, id uint) error {
	return fmt.Errorf("unexpected call to Delete")
}

func (m *mockAreaRepository) GetByID(ctx context.Context, id uint) (*area.Area, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("area not found")
}

func (m *mockAreaRepository) GetByResponsibleID(ctx context.Context, userID uint) (*area.Area, error) {
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
