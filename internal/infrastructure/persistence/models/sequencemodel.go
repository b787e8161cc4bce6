package models

// TicketSequenceModel is the counter row backing ticket numbering. One row
// per (prefix, year); the allocator increments Value under a row lock.
type TicketSequenceModel struct {
	ID     uint   `gorm:"primaryKey"`
	Prefix string `gorm:"size:10;not null;uniqueIndex:idx_ticket_sequences_prefix_year"`
	Year   int    `gorm:"not null;uniqueIndex:idx_ticket_sequences_prefix_year"`
	Value  int    `gorm:"not null;default:0"`
}

func (TicketSequenceModel) TableName() string {
	return "ticket_sequences"
}
