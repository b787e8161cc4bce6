package usecases

import (
	"context"

	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/ticket"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
	"miniticker/internal/shared/utils"
)

type AddCommentCommand struct {
	TicketID uint
	AuthorID uint
	Body     string
}

type AddCommentResult struct {
	CommentID uint
	TicketID  uint
}

type AddCommentUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	eventRepo   audit.TicketEventRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	eventRepo audit.TicketEventRepository,
	txManager TransactionManager,
	log logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		eventRepo:   eventRepo,
		txManager:   txManager,
		logger:      log,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case",
		"ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.AuthorID == 0 {
		return nil, errors.NewValidationError("author ID is required")
	}

	body := utils.SanitizeUserText(cmd.Body)
	if len(body) == 0 {
		return nil, errors.NewValidationError("comment body is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t.Status().IsTerminal() {
		return nil, errors.NewInvalidTransitionError("cannot comment on a finalized ticket")
	}

	comment, err := ticket.NewComment(t.ID(), cmd.AuthorID, body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.Save(txCtx, comment); err != nil {
			return err
		}
		event, err := audit.NewTicketEvent(t.ID(), cmd.AuthorID, audit.TicketCommentAdded, nil)
		if err != nil {
			return err
		}
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to add comment", "ticket_id", cmd.TicketID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to add comment")
	}

	uc.logger.Infow("comment added", "ticket_id", t.ID(), "comment_id", comment.ID())

	return &AddCommentResult{CommentID: comment.ID(), TicketID: t.ID()}, nil
}
