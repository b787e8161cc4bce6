package audit

import (
	"fmt"
	"time"

	"miniticker/internal/shared/biztime"
)

// SystemEvent is an administrative or session event, recorded outside of any
// ticket. Append-only, like ticket events.
type SystemEvent struct {
	id        uint
	actorID   uint
	kind      SystemEventKind
	payload   Payload
	createdAt time.Time
}

func NewSystemEvent(actorID uint, kind SystemEventKind, payload Payload) (*SystemEvent, error) {
	if actorID == 0 {
		return nil, fmt.Errorf("actor ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid system event kind: %s", kind)
	}
	if payload == nil {
		payload = Payload{}
	}

	return &SystemEvent{
		actorID:   actorID,
		kind:      kind,
		payload:   payload,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructSystemEvent(id, actorID uint, kind SystemEventKind, payload Payload, createdAt time.Time) (*SystemEvent, error) {
	if id == 0 {
		return nil, fmt.Errorf("event ID cannot be zero")
	}
	if payload == nil {
		payload = Payload{}
	}
	return &SystemEvent{
		id:        id,
		actorID:   actorID,
		kind:      kind,
		payload:   payload,
		createdAt: createdAt,
	}, nil
}

func (e *SystemEvent) ID() uint              { return e.id }
func (e *SystemEvent) ActorID() uint         { return e.actorID }
func (e *SystemEvent) Kind() SystemEventKind { return e.kind }
func (e *SystemEvent) Payload() Payload      { return e.payload }
func (e *SystemEvent) CreatedAt() time.Time  { return e.createdAt }

func (e *SystemEvent) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("event ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("event ID cannot be zero")
	}
	e.id = id
	return nil
}
