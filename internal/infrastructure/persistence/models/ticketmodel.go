package models

import "time"

// TicketModel is the persistence model for tickets, the anti-corruption
// layer between domain and database. No foreign key constraints or
// associations; relationships are managed by application business logic.
type TicketModel struct {
	ID            uint    `gorm:"primaryKey"`
	Number        string  `gorm:"uniqueIndex;size:50;not null"`
	Subject       string  `gorm:"size:200;not null"`
	Description   string  `gorm:"type:text;not null"`
	Priority      string  `gorm:"size:20;not null;index"`
	Status        string  `gorm:"size:20;not null;index"`
	AreaID        uint    `gorm:"not null;index"`
	RequestTypeID uint    `gorm:"not null;index"`
	RequesterID   uint    `gorm:"not null;index"`
	ManagerID     *uint   `gorm:"index"`
	AttachmentURL *string `gorm:"size:500"`
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	AuthorID  uint   `gorm:"not null;index"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}
