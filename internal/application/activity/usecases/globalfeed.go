package usecases

import (
	"context"

	"miniticker/internal/application/activity/dto"
	"miniticker/internal/domain/activity"
	"miniticker/internal/domain/audit"
	"miniticker/internal/domain/ticket"
	"miniticker/internal/domain/user"
	uservo "miniticker/internal/domain/user/valueobjects"
	"miniticker/internal/shared/biztime"
	"miniticker/internal/shared/errors"
	"miniticker/internal/shared/logger"
)

type GlobalFeedQuery struct {
	ActingUserID uint
	ActorRole    uservo.Role
	// AreaID restricts ticket events to tickets of that area. System events
	// carry no area and are left out entirely when the filter is set.
	AreaID       *uint
	TargetUserID *uint
	Limit        int
}

// GlobalFeedUseCase builds the supervisory feed across all users. Events by
// the acting user still render in the first person.
type GlobalFeedUseCase struct {
	ticketEventRepo audit.TicketEventRepository
	systemEventRepo audit.SystemEventRepository
	ticketRepo      ticket.Repository
	userRepo        user.Repository
	logger          logger.Interface
}

func NewGlobalFeedUseCase(
	ticketEventRepo audit.TicketEventRepository,
	systemEventRepo audit.SystemEventRepository,
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	log logger.Interface,
) *GlobalFeedUseCase {
	return &GlobalFeedUseCase{
		ticketEventRepo: ticketEventRepo,
		systemEventRepo: systemEventRepo,
		ticketRepo:      ticketRepo,
		userRepo:        userRepo,
		logger:          log,
	}
}

func (uc *GlobalFeedUseCase) Execute(ctx context.Context, query GlobalFeedQuery) ([]dto.FeedItemDTO, error) {
	if query.ActingUserID == 0 {
		return nil, errors.NewValidationError("acting user ID is required")
	}
	if !query.ActorRole.CanManageTickets() {
		return nil, errors.NewForbiddenError("role may not view the global feed")
	}
	limit := normalizeFeedLimit(query.Limit)

	ticketEvents, err := uc.listTicketEvents(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	systemEvents, err := uc.listSystemEvents(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	if query.AreaID != nil {
		ticketEvents = uc.filterByArea(ctx, ticketEvents, *query.AreaID)
	}

	numbers := resolveTicketNumbers(ctx, uc.ticketRepo, uc.logger, ticketEvents)
	names := uc.resolveActorNames(ctx, ticketEvents, systemEvents)
	now := biztime.NowUTC()

	records := make([]activity.Record, 0, len(ticketEvents)+len(systemEvents))
	for _, e := range ticketEvents {
		records = append(records, activity.RenderTicketEvent(e, numbers[e.TicketID()], names[e.ActorID()], query.ActingUserID, now))
	}
	for _, e := range systemEvents {
		records = append(records, activity.RenderSystemEvent(e, names[e.ActorID()], query.ActingUserID, now))
	}
	activity.SortRecords(records)
	if len(records) > limit {
		records = records[:limit]
	}

	return dto.FromRecords(records), nil
}

func (uc *GlobalFeedUseCase) listTicketEvents(ctx context.Context, query GlobalFeedQuery, limit int) ([]*audit.TicketEvent, error) {
	if query.TargetUserID != nil {
		return uc.ticketEventRepo.ListByActorID(ctx, *query.TargetUserID, limit)
	}
	return uc.ticketEventRepo.ListRecent(ctx, limit)
}

func (uc *GlobalFeedUseCase) listSystemEvents(ctx context.Context, query GlobalFeedQuery, limit int) ([]*audit.SystemEvent, error) {
	if query.AreaID != nil {
		return nil, nil
	}
	if query.TargetUserID != nil {
		return uc.systemEventRepo.ListByActorID(ctx, *query.TargetUserID, limit)
	}
	return uc.systemEventRepo.ListRecent(ctx, limit)
}

// filterByArea keeps only the events whose ticket belongs to the given area.
// Events whose ticket cannot be loaded are dropped.
func (uc *GlobalFeedUseCase) filterByArea(ctx context.Context, events []*audit.TicketEvent, areaID uint) []*audit.TicketEvent {
	areas := make(map[uint]uint)
	kept := make([]*audit.TicketEvent, 0, len(events))
	for _, e := range events {
		id, ok := areas[e.TicketID()]
		if !ok {
			t, err := uc.ticketRepo.GetByID(ctx, e.TicketID())
			if err != nil {
				uc.logger.Warnw("could not resolve ticket for feed", "ticket_id", e.TicketID(), "error", err)
				continue
			}
			id = t.AreaID()
			areas[e.TicketID()] = id
		}
		if id == areaID {
			kept = append(kept, e)
		}
	}
	return kept
}

func (uc *GlobalFeedUseCase) resolveActorNames(ctx context.Context, ticketEvents []*audit.TicketEvent, systemEvents []*audit.SystemEvent) map[uint]string {
	ids := make(map[uint]struct{})
	for _, e := range ticketEvents {
		ids[e.ActorID()] = struct{}{}
	}
	for _, e := range systemEvents {
		ids[e.ActorID()] = struct{}{}
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
