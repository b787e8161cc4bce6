package usecases

import (
	"context"

	"miniticker/internal/application/ticket/dto"
	"miniticker/internal/domain/activity"
	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/ticket"
	"miniticker/internal/domain/user"
	"miniticker/internal/shared/biztime"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
	"miniticker/internal/shared/utils"
)

type GetTicketQuery struct {
	TicketID uint
	// ViewerID selects first-person vs third-person rendering of the
	// history.
	ViewerID uint
}

// GetTicketUseCase returns a ticket with its rendered description and the
// merged history of events and comments, most recent first.
type GetTicketUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	eventRepo   audit.TicketEventRepository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	eventRepo audit.TicketEventRepository,
	userRepo user.Repository,
	log logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		logger:      log,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	events, err := uc.eventRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}
	comments, err := uc.commentRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	names := uc.actorNames(ctx, events, comments)
	now := biztime.NowUTC()

	records := make([]activity.Record, 0, len(events)+len(comments))
	for _, e := range events {
		records = append(records, activity.RenderTicketEvent(e, t.Number(), names[e.ActorID()], query.ViewerID, now))
	}
	for _, c := range comments {
		records = append(records, activity.RenderComment(c, t.Number(), names[c.AuthorID()], query.ViewerID, now))
	}
	activity.SortRecords(records)

	descriptionHTML, err := utils.RenderMarkdown(t.Description())
	if err != nil {
		uc.logger.Warnw("failed to render ticket description", "ticket_id", t.ID(), "error", err)
		descriptionHTML = ""
	}

	detail := &dto.TicketDetailDTO{
		TicketDTO:       dto.FromTicket(t),
		DescriptionHTML: descriptionHTML,
		History:         make([]dto.ActivityItemDTO, 0, len(records)),
	}
	for _, r := range records {
		detail.History = append(detail.History, dto.FromRecord(r))
	}

	return detail, nil
}

// actorNames resolves display names for every distinct actor in the history.
// Unresolvable actors render as "Unknown user" rather than failing the read.
func (uc *GetTicketUseCase) actorNames(ctx context.Context, events []*audit.TicketEvent, comments []*ticket.Comment) map[uint]string {
	ids := make(map[uint]struct{})
	for _, e := range events {
		ids[e.ActorID()] = struct{}{}
	}
	for _, c := range comments {
		ids[c.AuthorID()] = struct{}{}
	}

	names := make(map[uint]string, len(ids))
	for id := range ids {
		u, err := uc.userRepo.GetByID(ctx, id)
		if err != nil {
			uc.logger.Warnw("could not resolve actor name", "user_id", id, "error", err)
			names[id] = "Unknown user"
			continue
		}
		names[id] = u.Name()
	}
	return names
}
