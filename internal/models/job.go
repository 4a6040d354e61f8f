// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Job types accepted by the listing form.
const (
	JobTypeFullTime   = "Full-Time"
	JobTypePartTime   = "Part-Time"
	JobTypeContract   = "Contract"
	JobTypeTemporary  = "Temporary"
	JobTypeInternship = "Internship"
	JobTypeVolunteer  = "Volunteer"
	JobTypeOnCall     = "On-Call"
)

// JobTypes lists every valid job_type value, in display order.
var JobTypes = []string{
	JobTypeFullTime,
	JobTypePartTime,
	JobTypeContract,
	JobTypeTemporary,
	JobTypeInternship,
	JobTypeVolunteer,
	JobTypeOnCall,
}

// IsValidJobType reports whether t is one of the accepted job types.
func IsValidJobType(t string) bool {
	for _, jt := range JobTypes {
		if jt == t {
			return true
		}
	}
	return false
}

// Job represents a posted job listing with company and compensation metadata.
// UserID is the owner and never changes after creation (`<-:create`).
type Job struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"not null;index;<-:create" json:"user_id"`
	User               User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Title              string    `gorm:"size:255;not null" json:"title"`
	Description        string    `gorm:"type:text;not null" json:"description"`
	Salary             int       `gorm:"not null" json:"salary"`
	Tags               string    `json:"tags"`
	JobType            string    `gorm:"type:varchar(20);not null" json:"job_type"`
	Remote             bool      `gorm:"not null" json:"remote"`
	Requirements       string    `gorm:"type:text" json:"requirements"`
	Benefits           string    `gorm:"type:text" json:"benefits"`
	Address            string    `json:"address"`
	City               string    `gorm:"not null" json:"city"`
	ContactEmail       string    `gorm:"not null" json:"contact_email"`
	ContactPhone       string    `gorm:"not null" json:"contact_phone"`
	CompanyName        string    `gorm:"not null" json:"company_name"`
	CompanyDescription string    `gorm:"type:text" json:"company_description"`
	CompanyLogo        string    `json:"company_logo"`
	CompanyWebsite     string    `json:"company_website"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Applicants []Applicant `gorm:"foreignKey:JobID" json:"applicants,omitempty"`
}

// TableName specifies the table name for GORM
func (Job) TableName() string {
	return "job_listings"
}

// JobPage is a paginated slice of jobs with the total row count for the query.
type JobPage struct {
	Jobs   []*Job `json:"jobs"`
	Total  int64  `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}
