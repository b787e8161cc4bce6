package models

import (
	"time"

	"gorm.io/datatypes"
)

// TicketEventModel stores one ticket history entry. Payload is a JSON object
// of event-specific details.
type TicketEventModel struct {
	ID        uint           `gorm:"primaryKey"`
	TicketID  uint           `gorm:"not null;index"`
	ActorID   uint           `gorm:"not null;index"`
	Kind      string         `gorm:"size:50;not null;index"`
	Payload   datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time      `gorm:"index"`
}

func (TicketEventModel) TableName() string {
	return "ticket_events"
}

type SystemEventModel struct {
	ID        uint           `gorm:"primaryKey"`
	ActorID   uint           `gorm:"not null;index"`
	Kind      string         `gorm:"size:50;not null;index"`
	Payload   datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time      `gorm:"index"`
}

func (SystemEventModel) TableName() string {
	return "system_events"
}
