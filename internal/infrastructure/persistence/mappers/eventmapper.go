package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"miniticker/internal/domain/audit"
	"miniticker/internal/infrastructure/persistence/models"
)

type EventMapper interface {
	TicketEventToModel(e *audit.TicketEvent) (*models.TicketEventModel, error)
	TicketEventToDomain(model *models.TicketEventModel) (*audit.TicketEvent, error)
	SystemEventToModel(e *audit.SystemEvent) (*models.SystemEventModel, error)
	SystemEventToDomain(model *models.SystemEventModel) (*audit.SystemEvent, error)
}

type EventMapperImpl struct{}

func NewEventMapper() EventMapper {
	return &EventMapperImpl{}
}

func (m *EventMapperImpl) TicketEventToModel(e *audit.TicketEvent) (*models.TicketEventModel, error) {
	payload, err := marshalPayload(e.Payload())
	if err != nil {
		return nil, err
	}
	return &models.TicketEventModel{
		ID:        e.ID(),
		TicketID:  e.TicketID(),
		ActorID:   e.ActorID(),
		Kind:      e.Kind().String(),
		Payload:   payload,
		CreatedAt: e.CreatedAt(),
	}, nil
}

func (m *EventMapperImpl) TicketEventToDomain(model *models.TicketEventModel) (*audit.TicketEvent, error) {
	payload, err := unmarshalPayload(model.Payload)
	if err != nil {
		return nil, fmt.Errorf("invalid payload in ticket event %d: %w", model.ID, err)
	}
	return audit.ReconstructTicketEvent(
		model.ID,
		model.TicketID,
		model.ActorID,
		audit.TicketEventKind(model.Kind),
		payload,
		model.CreatedAt,
	)
}

func (m *EventMapperImpl) SystemEventToModel(e *audit.SystemEvent) (*models.SystemEventModel, error) {
	payload, err := marshalPayload(e.Payload())
	if err != nil {
		return nil, err
	}
	return &models.SystemEventModel{
		ID:        e.ID(),
		ActorID:   e.ActorID(),
		Kind:      e.Kind().String(),
		Payload:   payload,
		CreatedAt: e.CreatedAt(),
	}, nil
}

func (m *EventMapperImpl) SystemEventToDomain(model *models.SystemEventModel) (*audit.SystemEvent, error) {
	payload, err := unmarshalPayload(model.Payload)
	if err != nil {
		return nil, fmt.Errorf("invalid payload in system event %d: %w", model.ID, err)
	}
	return audit.ReconstructSystemEvent(
		model.ID,
		model.ActorID,
		audit.SystemEventKind(model.Kind),
		payload,
		model.CreatedAt,
	)
}

func marshalPayload(p audit.Payload) (datatypes.JSON, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return datatypes.JSON(raw), nil
}

func unmarshalPayload(raw datatypes.JSON) (audit.Payload, error) {
	if len(raw) == 0 {
		return audit.Payload{}, nil
	}
	var p audit.Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return p, nil
}
