package models

import "time"

type RequestTypeModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null;size:100;uniqueIndex:idx_request_types_area_name"`
	AreaID    uint   `gorm:"not null;uniqueIndex:idx_request_types_area_name;index"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RequestTypeModel) TableName() string {
	return "request_types"
}
