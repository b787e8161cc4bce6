package models

import "time"

type AreaModel struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"uniqueIndex;not null;size:100"`
	Prefix string `gorm:"not null;size:10;index"`
	Active bool   `gorm:"not null;default:true"`
	// ResponsibleID carries a unique index so the one-area-per-responsible
	// invariant holds at the database level too, not only in the guard.
	ResponsibleID *uint `gorm:"uniqueIndex"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (AreaModel) TableName() string {
	return "areas"
}
