package usecases

import (
	"context"
	"fmt"

	"miniticker/internal/application/activity/dto"
	"miniticker/internal/domain/activity"
	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/ticket"
	"miniticker/internal/domain/user"
	"miniticker/internal/shared/biztime"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
)

const defaultFeedLimit = 50

type PersonalFeedQuery struct {
	UserID uint
	Limit  int
}

// PersonalFeedUseCase merges the user's own ticket events and system events
// into one chronological feed, rendered in the first person.
type PersonalFeedUseCase struct {
	ticketEventRepo audit.TicketEventRepository
	systemEventRepo audit.SystemEventRepository
	ticketRepo      ticket.Repository
	userRepo        user.Repository
	logger          logger.Interface
}

func NewPersonalFeedUseCase(
	ticketEventRepo audit.TicketEventRepository,
	systemEventRepo audit.SystemEventRepository,
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	log logger.Interface,
) *PersonalFeedUseCase {
	return &PersonalFeedUseCase{
		ticketEventRepo: ticketEventRepo,
		systemEventRepo: systemEventRepo,
		ticketRepo:      ticketRepo,
		userRepo:        userRepo,
		logger:          log,
	}
}

func (uc *PersonalFeedUseCase) Execute(ctx context.Context, query PersonalFeedQuery) ([]dto.FeedItemDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	limit := normalizeFeedLimit(query.Limit)

	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	ticketEvents, err := uc.ticketEventRepo.ListByActorID(ctx, u.ID(), limit)
	if err != nil {
		return nil, err
	}
	systemEvents, err := uc.systemEventRepo.ListByActorID(ctx, u.ID(), limit)
	if err != nil {
		return nil, err
	}

	numbers := resolveTicketNumbers(ctx, uc.ticketRepo, uc.logger, ticketEvents)
	now := biztime.NowUTC()

	records := make([]activity.Record, 0, len(ticketEvents)+len(systemEvents))
	for _, e := range ticketEvents {
		records = append(records, activity.RenderTicketEvent(e, numbers[e.TicketID()], u.Name(), u.ID(), now))
	}
	for _, e := range systemEvents {
		records = append(records, activity.RenderSystemEvent(e, u.Name(), u.ID(), now))
	}
	activity.SortRecords(records)
	if len(records) > limit {
		records = records[:limit]
	}

	return dto.FromRecords(records), nil
}

func normalizeFeedLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return defaultFeedLimit
	}
	return limit
}

// resolveTicketNumbers looks up the ticket number for every distinct ticket
// referenced by the events. A ticket that cannot be loaded renders with an
// id-based placeholder instead of failing the feed.
func resolveTicketNumbers(
	ctx context.Context,
	repo ticket.Repository,
	log logger.Interface,
	events []*audit.TicketEvent,
) map[uint]string {
	numbers := make(map[uint]string)
	for _, e := range events {
		if _, ok := numbers[e.TicketID()]; ok {
			continue
		}
		t, err := repo.GetByID(ctx, e.TicketID())
		if err != nil {
			log.Warnw("could not resolve ticket for feed", "ticket_id", e.TicketID(), "error", err)
			numbers[e.TicketID()] = fmt.Sprintf("#%d", e.TicketID())
			continue
		}
		numbers[e.TicketID()] = t.Number()
	}
	return numbers
}
