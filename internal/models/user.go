package models

import "time"

// User represents a registered account.
// Password holds the bcrypt hash and is never serialized.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Username  string    `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,max=100"`
	Password  string    `json:"-" gorm:"type:varchar(255)" validate:"required,max=72"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
