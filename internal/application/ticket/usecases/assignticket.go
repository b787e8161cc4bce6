package usecases

import (
	"context"

	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/ticket"
	"miniticker/internal/domain/user"
	uservo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID  uint
	ManagerID uint
	ActorID   uint
	ActorRole uservo.Role
}

type AssignTicketResult struct {
	TicketID  uint
	ManagerID uint
}

type AssignTicketUseCase struct {
	ticketRepo ticket.Repository
	eventRepo  audit.TicketEventRepository
	userRepo   user.Repository
	txManager  TransactionManager
	notifier   Notifier
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.Repository,
	eventRepo audit.TicketEventRepository,
	userRepo user.Repository,
	txManager TransactionManager,
	notifier Notifier,
	log logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		eventRepo:  eventRepo,
		userRepo:   userRepo,
		txManager:  txManager,
		notifier:   notifier,
		logger:     log,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	uc.logger.Infow("executing assign ticket use case",
		"ticket_id", cmd.TicketID, "manager_id", cmd.ManagerID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.ManagerID == 0 {
		return nil, errors.NewValidationError("manager ID is required")
	}
	if !cmd.ActorRole.CanManageTickets() {
		return nil, errors.NewForbiddenError("role may not assign tickets")
	}

	manager, err := uc.userRepo.GetByID(ctx, cmd.ManagerID)
	if err != nil {
		return nil, err
	}
	if !manager.IsActive() {
		return nil, errors.NewValidationError("assignee is not active")
	}
	if !manager.Role().CanManageTickets() {
		return nil, errors.NewValidationError("assignee cannot manage tickets")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if err := t.AssignManager(cmd.ManagerID); err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		event, err := audit.NewTicketEvent(t.ID(), cmd.ActorID, audit.TicketAssigned,
			audit.Payload{"assignee": manager.Name()})
		if err != nil {
			return err
		}
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to assign ticket", "ticket_id", cmd.TicketID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to assign ticket")
	}

	if err := uc.notifier.SendTicketAssignedEmail(
		manager.Email().String(), manager.Name(), t.Number(), t.Subject()); err != nil {
		uc.logger.Warnw("failed to send assignment notification",
			"ticket_id", t.ID(), "to", manager.Email().String(), "error", err)
	}

	uc.logger.Infow("ticket assigned", "ticket_id", t.ID(), "manager_id", cmd.ManagerID)

	return &AssignTicketResult{TicketID: t.ID(), ManagerID: cmd.ManagerID}, nil
}
