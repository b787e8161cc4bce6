package usecases

import (
	"context"

	"miniticker/internal/application/ticket/dto"
	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/ticket"
	vo "miniticker/internal/domain/ticket/valueobjects"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
	"miniticker/internal/shared/utils"
)

type UpdateTicketCommand struct {
	TicketID      uint
	Subject       string
	Description   string
	Priority      string
	ActorID       uint
	AttachmentURL *string
}

type UpdateTicketResult struct {
	Ticket dto.TicketDTO
}

// UpdateTicketUseCase edits a ticket's subject, description and priority.
// Only the requester may edit, and only while the ticket is still new.
type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	eventRepo  audit.TicketEventRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	eventRepo audit.TicketEventRepository,
	txManager TransactionManager,
	log logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		eventRepo:  eventRepo,
		txManager:  txManager,
		logger:     log,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t.RequesterID() != cmd.ActorID {
		return nil, errors.NewForbiddenError("only the requester may edit the ticket")
	}

	if err := t.UpdateDetails(cmd.Subject, utils.SanitizeUserText(cmd.Description), priority); err != nil {
		return nil, err
	}
	if cmd.AttachmentURL != nil {
		t.SetAttachmentURL(*cmd.AttachmentURL)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		event, err := audit.NewTicketEvent(t.ID(), cmd.ActorID, audit.TicketUpdated, nil)
		if err != nil {
			return err
		}
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID())

	return &UpdateTicketResult{Ticket: dto.FromTicket(t)}, nil
}
