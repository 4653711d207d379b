package models

import "time"

type User struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"size:255;not null;index"`
	LastName  string `gorm:"size:255;not null;index"`
	Age       int    `gorm:"not null"`
	Email     string `gorm:"size:320;not null;index"`
	FileName  string `gorm:"size:255;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
