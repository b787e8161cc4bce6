package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/ticket"
	vo "miniticker/internal/domain/ticket/valueobjects"
	"miniticker/internal/domain/user"
	uservo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/shared/errors"
)

func reconstructTicket(t *testing.T, id uint, status vo.Status) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(
		id, "TEC-2026-0001",
		"VPN down", "Cannot connect",
		vo.PriorityHigh, status,
		1, 2, 3, nil, nil,
		time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC), nil,
	)
	require.NoError(t, err)
	return tk
}

func reconstructUser(t *testing.T, id uint, name, email string, role uservo.Role) *user.User {
	t.Helper()
	emailVO, err := uservo.NewEmail(email)
	require.NoError(t, err)
	u, err := user.ReconstructUser(
		id, name, emailVO, "$2a$12$hash", role,
		nil, true, nil, false,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return u
}

func TestChangeStatusUseCase_Execute(t *testing.T) {
	requester := reconstructUser(t, 3, "Carol", "carol@example.com", uservo.RoleRequester)

	newUseCase := func(
		ticketRepo *mockTicketRepository,
		commentRepo *mockCommentRepository,
		eventRepo *mockTicketEventRepository,
		notifier *mockNotifier,
	) *ChangeStatusUseCase {
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return requester, nil
			},
		}
		return NewChangeStatusUseCase(
			ticketRepo, commentRepo, eventRepo, userRepo,
			&mockTransactionManager{}, notifier, &mockLogger{},
		)
	}

	t.Run("manager progresses a new ticket", func(t *testing.T) {
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

		result, err := newUseCase(ticketRepo, &mockCommentRepository{}, eventRepo, notifier).
			Execute(context.Background(), ChangeStatusCommand{
				TicketID:  1,
				NewStatus: "in_progress",
				ActorID:   5,
				ActorRole: uservo.RoleManager,
			})

		require.NoError(t, err)
		assert.Equal(t, "new", result.OldStatus)
		assert.Equal(t, "in_progress", result.NewStatus)

		require.NotNil(t, savedEvent)
		assert.Equal(t, audit.TicketStatusChanged, savedEvent.Kind())
		assert.Equal(t, "new", savedEvent.Payload()["from"])
		assert.Equal(t, "in_progress", savedEvent.Payload()["to"])

		assert.Equal(t, []string{"TEC-2026-0001"}, notifier.StatusCalls)
	})

	t.Run("rejection stores the reason as a comment", func(t *testing.T) {
		tk := reconstructTicket(t, 1, vo.StatusInProgress)
		var savedComment *ticket.Comment
		var savedEvent *audit.TicketEvent

		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		commentRepo := &mockCommentRepository{
			SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
				savedComment = c
				return c.SetID(9)
			},
		}
		eventRepo := &mockTicketEventRepository{
			SaveFunc: func(ctx context.Context, e *audit.TicketEvent) error {
				savedEvent = e
				return e.SetID(2)
			},
		}

		_, err := newUseCase(ticketRepo, commentRepo, eventRepo, &mockNotifier{}).
			Execute(context.Background(), ChangeStatusCommand{
				TicketID:  1,
				NewStatus: "rejected",
				ActorID:   5,
				ActorRole: uservo.RoleManager,
				Reason:    "duplicate of TEC-2026-0002",
			})

		require.NoError(t, err)
		require.NotNil(t, savedComment)
		assert.Equal(t, "duplicate of TEC-2026-0002", savedComment.Body())
		assert.Equal(t, uint(5), savedComment.AuthorID())
		require.NotNil(t, savedEvent)
		assert.Equal(t, "duplicate of TEC-2026-0002", savedEvent.Payload()["reason"])
	})

	t.Run("closing with a reason stores it as a comment too", func(t *testing.T) {
		tk := reconstructTicket(t, 1, vo.StatusResolved)
		var savedComment *ticket.Comment
		var savedEvent *audit.TicketEvent

		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		commentRepo := &mockCommentRepository{
			SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
				savedComment = c
				return c.SetID(10)
			},
		}
		eventRepo := &mockTicketEventRepository{
			SaveFunc: func(ctx context.Context, e *audit.TicketEvent) error {
				savedEvent = e
				return e.SetID(3)
			},
		}

		_, err := newUseCase(ticketRepo, commentRepo, eventRepo, &mockNotifier{}).
			Execute(context.Background(), ChangeStatusCommand{
				TicketID:  1,
				NewStatus: "closed",
				ActorID:   8,
				ActorRole: uservo.RoleAdmin,
				Reason:    "verified fixed with the requester",
			})

		require.NoError(t, err)
		require.NotNil(t, savedComment)
		assert.Equal(t, "verified fixed with the requester", savedComment.Body())
		assert.Equal(t, uint(8), savedComment.AuthorID())
		require.NotNil(t, savedEvent)
		assert.Equal(t, "verified fixed with the requester", savedEvent.Payload()["reason"])
	})

	t.Run("progress without a reason appends no comment", func(t *testing.T) {
		tk := reconstructTicket(t, 1, vo.StatusNew)
		commentSaved := false

		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		commentRepo := &mockCommentRepository{
			SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
				commentSaved = true
				return c.SetID(11)
			},
		}

		_, err := newUseCase(ticketRepo, commentRepo, &mockTicketEventRepository{}, &mockNotifier{}).
			Execute(context.Background(), ChangeStatusCommand{
				TicketID:  1,
				NewStatus: "in_progress",
				ActorID:   5,
				ActorRole: uservo.RoleManager,
			})

		require.NoError(t, err)
		assert.False(t, commentSaved)
	})

	t.Run("rejection without reason fails", func(t *testing.T) {
		tk := reconstructTicket(t, 1, vo.StatusInProgress)
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		}

		_, err := newUseCase(ticketRepo, &mockCommentRepository{}, &mockTicketEventRepository{}, &mockNotifier{}).
			Execute(context.Background(), ChangeStatusCommand{
				TicketID:  1,
				NewStatus: "rejected",
				ActorID:   5,
				ActorRole: uservo.RoleManager,
			})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Equal(t, vo.StatusInProgress, tk.Status())
	})

	t.Run("manager may not close", func(t *testing.T) {
		tk := reconstructTicket(t, 1, vo.StatusResolved)
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		}

		_, err := newUseCase(ticketRepo, &mockCommentRepository{}, &mockTicketEventRepository{}, &mockNotifier{}).
			Execute(context.Background(), ChangeStatusCommand{
				TicketID:  1,
				NewStatus: "closed",
				ActorID:   5,
				ActorRole: uservo.RoleManager,
			})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("backward move surfaces invalid transition", func(t *testing.T) {
		tk := reconstructTicket(t, 1, vo.StatusResolved)
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		}

		_, err := newUseCase(ticketRepo, &mockCommentRepository{}, &mockTicketEventRepository{}, &mockNotifier{}).
			Execute(context.Background(), ChangeStatusCommand{
				TicketID:  1,
				NewStatus: "in_progress",
				ActorID:   5,
				ActorRole: uservo.RoleAdmin,
			})

		require.Error(t, err)
		assert.True(t, errors.IsInvalidTransitionError(err))
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := newUseCase(&mockTicketRepository{}, &mockCommentRepository{}, &mockTicketEventRepository{}, &mockNotifier{}).
			Execute(context.Background(), ChangeStatusCommand{
				TicketID:  1,
				NewStatus: "pending",
				ActorID:   5,
				ActorRole: uservo.RoleAdmin,
			})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
