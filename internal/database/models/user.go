package models

import (
	"time"
)

// UserStatus represents whether a user account is blocked or not
type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

// IsValid reports whether s is one of the known account statuses.
func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusBlocked
}

// User represents the user domain entity
type User struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Name         string     `gorm:"not null" json:"name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	Status       UserStatus `gorm:"not null;default:active" json:"status"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}

// IsBlocked reports whether the account status is BLOCKED.
func (u *User) IsBlocked() bool {
	return u.Status == UserStatusBlocked
}
