package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/ticket"
	vo "miniticker/internal/domain/ticket/valueobjects"
	"miniticker/internal/shared/errors"
)

func TestAddCommentUseCase_Execute(t *testing.T) {
	t.Run("saves comment and event", func(t *testing.T) {
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
				return c.SetID(4)
			},
		}
		eventRepo := &mockTicketEventRepository{
			SaveFunc: func(ctx context.Context, e *audit.TicketEvent) error {
				savedEvent = e
				return e.SetID(1)
			},
		}

		uc := NewAddCommentUseCase(ticketRepo, commentRepo, eventRepo, &mockTransactionManager{}, &mockLogger{})

		result, err := uc.Execute(context.Background(), AddCommentCommand{
			TicketID: 1,
			AuthorID: 3,
			Body:     "  still broken after the restart  ",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(4), result.CommentID)

		require.NotNil(t, savedComment)
		assert.Equal(t, "still broken after the restart", savedComment.Body())
		assert.Equal(t, uint(3), savedComment.AuthorID())

		require.NotNil(t, savedEvent)
		assert.Equal(t, audit.TicketCommentAdded, savedEvent.Kind())
	})

	t.Run("strips markup from the body", func(t *testing.T) {
		tk := reconstructTicket(t, 1, vo.StatusNew)
		var savedComment *ticket.Comment

		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		commentRepo := &mockCommentRepository{
			SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
				savedComment = c
				return c.SetID(5)
			},
		}

		uc := NewAddCommentUseCase(ticketRepo, commentRepo, &mockTicketEventRepository{}, &mockTransactionManager{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), AddCommentCommand{
			TicketID: 1,
			AuthorID: 3,
			Body:     `<script>alert(1)</script>checking in`,
		})

		require.NoError(t, err)
		require.NotNil(t, savedComment)
		assert.Equal(t, "checking in", savedComment.Body())
	})

	t.Run("empty body after sanitizing", func(t *testing.T) {
		uc := NewAddCommentUseCase(&mockTicketRepository{}, &mockCommentRepository{}, &mockTicketEventRepository{}, &mockTransactionManager{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), AddCommentCommand{
			TicketID: 1,
			AuthorID: 3,
			Body:     "<b></b>   ",
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("finalized ticket refuses comments", func(t *testing.T) {
		tk := reconstructTicket(t, 1, vo.StatusRejected)
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		}

		uc := NewAddCommentUseCase(ticketRepo, &mockCommentRepository{}, &mockTicketEventRepository{}, &mockTransactionManager{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), AddCommentCommand{
			TicketID: 1,
			AuthorID: 3,
			Body:     "can this be reopened?",
		})

		require.Error(t, err)
		assert.True(t, errors.IsInvalidTransitionError(err))
	})
}
