package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/ticket"
	vo "miniticker/internal/domain/ticket/valueobjects"
	"miniticker/internal/domain/user"
	uservo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/shared/errors"
)

func TestAssignTicketUseCase_Execute(t *testing.T) {
	manager := reconstructUser(t, 7, "Bob", "bob@example.com", uservo.RoleManager)
	requester := reconstructUser(t, 3, "Carol", "carol@example.com", uservo.RoleRequester)

	userByID := func(ctx context.Context, id uint) (*user.User, error) {
		switch id {
		case manager.ID():
			return manager, nil
		case requester.ID():
			return requester, nil
		}
		return nil, errors.NewNotFoundError("user not found")
	}

	t.Run("assigns an active manager and notifies them", func(t *testing.T) {
		tk := reconstructTicket(t, 1, vo.StatusNew)
		var savedEvent *audit.TicketEvent

		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		eventRepo := &mockTicketEventRepository{
			SaveFunc: func(ctx context.Context, e *audit.TicketEvent) error {
				savedEvent = e
				return e.SetID(1)
			},
		}
		notifier := &mockNotifier{}

		uc := NewAssignTicketUseCase(
			ticketRepo, eventRepo,
			&mockUserRepository{GetByIDFunc: userByID},
			&mockTransactionManager{}, notifier, &mockLogger{},
		)

		result, err := uc.Execute(context.Background(), AssignTicketCommand{
			TicketID:  1,
			ManagerID: 7,
			ActorID:   10,
			ActorRole: uservo.RoleAdmin,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(7), result.ManagerID)
		require.NotNil(t, tk.ManagerID())
		assert.Equal(t, uint(7), *tk.ManagerID())

		require.NotNil(t, savedEvent)
		assert.Equal(t, audit.TicketAssigned, savedEvent.Kind())
		assert.Equal(t, "Bob", savedEvent.Payload()["assignee"])

		assert.Equal(t, []string{"TEC-2026-0001"}, notifier.AssignedCalls)
	})

	t.Run("requester role may not assign", func(t *testing.T) {
		uc := NewAssignTicketUseCase(
			&mockTicketRepository{}, &mockTicketEventRepository{},
			&mockUserRepository{GetByIDFunc: userByID},
			&mockTransactionManager{}, &mockNotifier{}, &mockLogger{},
		)

		_, err := uc.Execute(context.Background(), AssignTicketCommand{
			TicketID:  1,
			ManagerID: 7,
			ActorID:   3,
			ActorRole: uservo.RoleRequester,
		})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("assignee must be able to manage tickets", func(t *testing.T) {
		uc := NewAssignTicketUseCase(
			&mockTicketRepository{}, &mockTicketEventRepository{},
			&mockUserRepository{GetByIDFunc: userByID},
			&mockTransactionManager{}, &mockNotifier{}, &mockLogger{},
		)

		_, err := uc.Execute(context.Background(), AssignTicketCommand{
			TicketID:  1,
			ManagerID: 3,
			ActorID:   10,
			ActorRole: uservo.RoleAdmin,
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("finalized ticket cannot be assigned", func(t *testing.T) {
		tk := reconstructTicket(t, 1, vo.StatusClosed)
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		}

		uc := NewAssignTicketUseCase(
			ticketRepo, &mockTicketEventRepository{},
			&mockUserRepository{GetByIDFunc: userByID},
			&mockTransactionManager{}, &mockNotifier{}, &mockLogger{},
		)

		_, err := uc.Execute(context.Background(), AssignTicketCommand{
			TicketID:  1,
			ManagerID: 7,
			ActorID:   10,
			ActorRole: uservo.RoleAdmin,
		})

		require.Error(t, err)
		assert.True(t, errors.IsInvalidTransitionError(err))
	})
}
