// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Bookmark is a saved-for-later association between a user and a job.
// CreatedAt orders the bookmark listing (most recently saved first).
// The (user_id, job_id) unique index prevents duplicate saves.
type Bookmark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_bookmarks_user_job" json:"user_id"`
	JobID     uint      `gorm:"not null;uniqueIndex:idx_bookmarks_user_job" json:"job_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Job       Job       `gorm:"foreignKey:JobID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Bookmark) TableName() string {
	return "bookmarks"
}
