package usecases

import (
	"context"
	"fmt"

	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/ticket"
	vo "miniticker/internal/domain/ticket/valueobjects"
	"miniticker/internal/domain/user"
	uservo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
	"miniticker/internal/shared/utils"
)

type ChangeStatusCommand struct {
	TicketID  uint
	NewStatus string
	ActorID   uint
	ActorRole uservo.Role
	// Reason is required when moving to rejected. Any non-empty reason is
	// stored both in the event payload and as a comment by the actor.
	Reason string
}

type ChangeStatusResult struct {
	TicketID  uint
	OldStatus string
	NewStatus string
}

type ChangeStatusUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	eventRepo   audit.TicketEventRepository
	userRepo    user.Repository
	txManager   TransactionManager
	notifier    Notifier
	logger      logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	eventRepo audit.TicketEventRepository,
	userRepo user.Repository,
	txManager TransactionManager,
	notifier Notifier,
	log logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		notifier:    notifier,
		logger:      log,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case",
		"ticket_id", cmd.TicketID, "new_status", cmd.NewStatus, "actor_id", cmd.ActorID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid change status command", "error", err)
		return nil, err
	}

	newStatus, err := vo.NewStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	oldStatus := t.Status()

	reason := utils.SanitizeUserText(cmd.Reason)
	if err := t.ChangeStatus(newStatus, cmd.ActorRole, reason); err != nil {
		uc.logger.Warnw("status change refused",
			"ticket_id", cmd.TicketID, "from", oldStatus, "to", newStatus, "error", err)
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		payload := audit.Payload{
			"from": oldStatus.String(),
			"to":   newStatus.String(),
		}
		if reason != "" {
			payload["reason"] = reason

			comment, err := ticket.NewComment(t.ID(), cmd.ActorID, reason)
			if err != nil {
				return err
			}
			if err := uc.commentRepo.Save(txCtx, comment); err != nil {
				return err
			}
		}

		event, err := audit.NewTicketEvent(t.ID(), cmd.ActorID, audit.TicketStatusChanged, payload)
		if err != nil {
			return err
		}
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist status change", "ticket_id", cmd.TicketID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to change ticket status")
	}

	uc.notifyRequester(ctx, t)

	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(), "from", oldStatus, "to", t.Status())

	return &ChangeStatusResult{
		TicketID:  t.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: t.Status().String(),
	}, nil
}

// notifyRequester mails the requester about the new status. Best effort only.
func (uc *ChangeStatusUseCase) notifyRequester(ctx context.Context, t *ticket.Ticket) {
	requester, err := uc.userRepo.GetByID(ctx, t.RequesterID())
	if err != nil {
		uc.logger.Warnw("could not load requester for notification",
			"ticket_id", t.ID(), "error", err)
		return
	}
	if err := uc.notifier.SendTicketStatusEmail(requester.Email().String(), t.Number(), t.Status().String()); err != nil {
		uc.logger.Warnw("failed to send status notification",
			"ticket_id", t.ID(), "to", requester.Email().String(), "error", err)
	}
}

func (uc *ChangeStatusUseCase) validateCommand(cmd ChangeStatusCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.ActorID == 0 {
		return errors.NewValidationError("actor ID is required")
	}
	if !cmd.ActorRole.IsValid() {
		return errors.NewValidationError(fmt.Sprintf("invalid role: %s", cmd.ActorRole))
	}
	return nil
}
