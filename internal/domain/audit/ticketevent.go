package audit

import (
	"fmt"
	"time"

	"miniticker/internal/shared/biztime"
)

// Payload carries the event-specific details (old/new status, assignee name,
// rejection reason). Keys are per-kind conventions agreed between the
// recording use case and the activity renderer.
type Payload map[string]string

// TicketEvent is one entry in a ticket's history. Events are append-only and
// written in the same transaction as the mutation they describe.
type TicketEvent struct {
	id        uint
	ticketID  uint
	actorID   uint
	kind      TicketEventKind
	payload   Payload
	createdAt time.Time
}

func NewTicketEvent(ticketID, actorID uint, kind TicketEventKind, payload Payload) (*TicketEvent, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if actorID == 0 {
		return nil, fmt.Errorf("actor ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid ticket event kind: %s", kind)
	}
	if payload == nil {
		payload = Payload{}
	}

	return &TicketEvent{
		ticketID:  ticketID,
		actorID:   actorID,
		kind:      kind,
		payload:   payload,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructTicketEvent(id, ticketID, actorID uint, kind TicketEventKind, payload Payload, createdAt time.Time) (*TicketEvent, error) {
	if id == 0 {
		return nil, fmt.Errorf("event ID cannot be zero")
	}
	if payload == nil {
		payload = Payload{}
	}
	return &TicketEvent{
		id:        id,
		ticketID:  ticketID,
		actorID:   actorID,
		kind:      kind,
		payload:   payload,
		createdAt: createdAt,
	}, nil
}

func (e *TicketEvent) ID() uint              { return e.id }
func (e *TicketEvent) TicketID() uint        { return e.ticketID }
func (e *TicketEvent) ActorID() uint         { return e.actorID }
func (e *TicketEvent) Kind() TicketEventKind { return e.kind }
func (e *TicketEvent) Payload() Payload      { return e.payload }
func (e *TicketEvent) CreatedAt() time.Time  { return e.createdAt }

func (e *TicketEvent) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("event ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("event ID cannot be zero")
	}
	e.id = id
	return nil
}
