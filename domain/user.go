package domain

import (
	"time"

	"gorm.io/gorm"
)

// User is read-only here; profile management lives in the account service.
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	DisplayName string         `gorm:"column:display_name;not null" json:"display_name"`
	Email       string         `gorm:"column:email;unique;not null" json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
