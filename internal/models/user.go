// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. A user both posts jobs and applies
// to jobs posted by others.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Jobs []Job `gorm:"foreignKey:UserID" json:"jobs,omitempty"`
}
