package usecases

import (
	"context"

	"miniticker/internal/application/ticket/dto"
	"miniticker/internal/domain/area"
	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/requesttype"
	"miniticker/internal/domain/ticket"
	vo "miniticker/internal/domain/ticket/valueobjects"
	"miniticker/internal/shared/biztime"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
	"miniticker/internal/shared/utils"
)

type CreateTicketCommand struct {
	Subject       string
	Description   string
	Priority      string
	AreaID        uint
	RequestTypeID uint
	RequesterID   uint
	AttachmentURL *string
}

type CreateTicketResult struct {
	Ticket dto.TicketDTO
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	eventRepo  audit.TicketEventRepository
	areaRepo   area.Repository
	typeRepo   requesttype.Repository
	sequences  ticket.SequenceAllocator
	txManager  TransactionManager
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	eventRepo audit.TicketEventRepository,
	areaRepo area.Repository,
	typeRepo requesttype.Repository,
	sequences ticket.SequenceAllocator,
	txManager TransactionManager,
	log logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		eventRepo:  eventRepo,
		areaRepo:   areaRepo,
		typeRepo:   typeRepo,
		sequences:  sequences,
		txManager:  txManager,
		logger:     log,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case",
		"requester_id", cmd.RequesterID, "area_id", cmd.AreaID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	a, err := uc.areaRepo.GetByID(ctx, cmd.AreaID)
	if err != nil {
		return nil, err
	}
	if !a.IsActive() {
		return nil, errors.NewValidationError("area is not active")
	}

	rt, err := uc.typeRepo.GetByID(ctx, cmd.RequestTypeID)
	if err != nil {
		return nil, err
	}
	if !rt.IsActive() {
		return nil, errors.NewValidationError("request type is not active")
	}
	if rt.AreaID() != a.ID() {
		return nil, errors.NewValidationError("request type does not belong to the selected area")
	}

	t, err := ticket.NewTicket(
		cmd.Subject,
		utils.SanitizeUserText(cmd.Description),
		priority,
		cmd.AreaID,
		cmd.RequestTypeID,
		cmd.RequesterID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.AttachmentURL != nil {
		t.SetAttachmentURL(*cmd.AttachmentURL)
	}

	// Number allocation, save and the created event share one transaction:
	// a failure rolls the counter back and no gap or orphan event is left.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		year := biztime.NowUTC().Year()
		seq, err := uc.sequences.Next(txCtx, a.Prefix(), year)
		if err != nil {
			return err
		}
		if err := t.SetNumber(ticket.FormatNumber(a.Prefix(), year, seq)); err != nil {
			return err
		}

		if err := uc.ticketRepo.Save(txCtx, t); err != nil {
			return err
		}

		event, err := audit.NewTicketEvent(t.ID(), cmd.RequesterID, audit.TicketCreated, nil)
		if err != nil {
			return err
		}
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to create ticket", "requester_id", cmd.RequesterID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to create ticket")
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "number", t.Number())

	return &CreateTicketResult{Ticket: dto.FromTicket(t)}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.RequesterID == 0 {
		return errors.NewValidationError("requester ID is required")
	}
	if cmd.AreaID == 0 {
		return errors.NewValidationError("area ID is required")
	}
	if cmd.RequestTypeID == 0 {
		return errors.NewValidationError("request type ID is required")
	}
	if len(cmd.Subject) == 0 {
		return errors.NewValidationError("subject is required")
	}
	return nil
}
