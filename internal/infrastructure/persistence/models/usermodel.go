package models

import "time"

type UserModel struct {
	ID                 uint    `gorm:"primarykey"`
	Name               string  `gorm:"not null;size:100"`
	Email              string  `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash       string  `gorm:"not null;size:255"`
	Role               string  `gorm:"not null;size:20;index"`
	AreaID             *uint   `gorm:"index"`
	Active             bool    `gorm:"not null;default:true"`
	PhotoURL           *string `gorm:"size:500"`
	MustChangePassword bool    `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (UserModel) TableName() string {
	return "users"
}
