package audit

import "context"

type TicketEventRepository interface {
	Save(ctx context.Context, e *TicketEvent) error
	ListByTicketID(ctx context.Context, ticketID uint) ([]*TicketEvent, error)
	// ListByActorID returns the actor's most recent events, newest first.
	ListByActorID(ctx context.Context, actorID uint, limit int) ([]*TicketEvent, error)
	// ListRecent returns the most recent events across all tickets, newest
	// first.
	ListRecent(ctx context.Context, limit int) ([]*TicketEvent, error)
}

type SystemEventRepository interface {
	Save(ctx context.Context, e *SystemEvent) error
	ListByActorID(ctx context.Context, actorID uint, limit int) ([]*SystemEvent, error)
	ListRecent(ctx context.Context, limit int) ([]*SystemEvent, error)
}
