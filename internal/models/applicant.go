// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Applicant is a submitted application by a user to a specific job.
// The (job_id, user_id) unique index is the authoritative guard against
// a user applying to the same job twice; the service-level pre-check only
// exists to produce a friendly error without processing the resume upload.
type Applicant struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	JobID        uint   `gorm:"not null;uniqueIndex:idx_applicants_job_user" json:"job_id"`
	UserID       uint   `gorm:"not null;uniqueIndex:idx_applicants_job_user" json:"user_id"`
	Job          Job    `gorm:"foreignKey:JobID" json:"-"`
	User         User   `gorm:"foreignKey:UserID" json:"-"`
	FullName     string `gorm:"not null" json:"full_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `gorm:"not null" json:"contact_email"`
	Message      string `gorm:"type:text" json:"message"`
	Location     string `json:"location"`
	ResumePath   string `gorm:"not null" json:"resume_path"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
