package models

import (
	"time"
)

// User owns transactions through its UserID business key. Both UserID and
// Email carry unique indexes enforced by the store.
type User struct {
	ID          uint    `gorm:"primarykey"`
	UserID      string  `gorm:"uniqueIndex;size:255;not null"`
	UserName    string  `gorm:"size:255;not null"`
	Email       string  `gorm:"uniqueIndex;size:255;not null"`
	PhoneNumber *string `gorm:"size:20"`
	IsActive    bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
