// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"jobhive/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var jobTags = []string{
	"go", "python", "javascript", "typescript", "react", "vue", "postgres",
	"mysql", "redis", "kubernetes", "docker", "aws", "terraform", "devops",
	"backend", "frontend", "fullstack", "mobile", "security", "data",
}

var benefitLines = []string{
	"Health, dental, and vision insurance",
	"401(k) with company match",
	"Unlimited PTO",
	"Remote-friendly culture",
	"Annual learning budget",
	"Equity options",
	"Home office stipend",
}

// BuildUser constructs a user without persisting it.
func (f *Factory) BuildUser(overrides ...func(*models.User)) *models.User {
	name := gofakeit.Name()
	user := &models.User{
		Name: name,
		// Random suffix keeps generated emails unique across large batches.
		Email:    fmt.Sprintf("%s.%s@%s", gofakeit.Username(), gofakeit.LetterN(6), gofakeit.DomainName()),
		Password: defaultPasswordHash,
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}
	for _, override := range overrides {
		override(user)
	}
	return user
}

// BuildJob constructs a job listing for the given owner without persisting it.
func (f *Factory) BuildJob(owner *models.User, overrides ...func(*models.Job)) *models.Job {
	company := gofakeit.Company()
	title := gofakeit.JobTitle()

	tagCount := 2 + f.rand.Intn(3)
	tags := make([]string, 0, tagCount)
	for _, i := range f.rand.Perm(len(jobTags))[:tagCount] {
		tags = append(tags, jobTags[i])
	}

	benefitCount := 2 + f.rand.Intn(3)
	benefits := make([]string, 0, benefitCount)
	for _, i := range f.rand.Perm(len(benefitLines))[:benefitCount] {
		benefits = append(benefits, benefitLines[i])
	}

	job := &models.Job{
		UserID:             owner.ID,
		Title:              title,
		Description:        gofakeit.Paragraph(2, 4, 8, "\n"),
		Salary:             (50 + f.rand.Intn(150)) * 1000,
		Tags:               strings.Join(tags, ", "),
		JobType:            models.JobTypes[f.rand.Intn(len(models.JobTypes))],
		Remote:             f.rand.Intn(2) == 0,
		Requirements:       gofakeit.Paragraph(1, 3, 6, "\n"),
		Benefits:           strings.Join(benefits, "\n"),
		Address:            gofakeit.Street(),
		City:               gofakeit.City(),
		ContactEmail:       fmt.Sprintf("careers@%s", gofakeit.DomainName()),
		ContactPhone:       gofakeit.Phone(),
		CompanyName:        company,
		CompanyDescription: gofakeit.Paragraph(1, 2, 8, " "),
		CompanyLogo:        fmt.Sprintf("https://picsum.photos/seed/%s/200/200", gofakeit.UUID()),
		CompanyWebsite:     gofakeit.URL(),
	}

	// Spread listings over the last 60 days so ordering looks natural.
	daysBack := f.rand.Intn(60)
	hoursBack := f.rand.Intn(24)
	job.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(job)
	}
	return job
}

// BuildApplicant constructs an application by user for job without persisting it.
func (f *Factory) BuildApplicant(job *models.Job, user *models.User) *models.Applicant {
	return &models.Applicant{
		JobID:        job.ID,
		UserID:       user.ID,
		FullName:     user.Name,
		ContactPhone: gofakeit.Phone(),
		ContactEmail: user.Email,
		Message:      gofakeit.Paragraph(1, 2, 10, " "),
		Location:     gofakeit.City(),
		ResumePath:   fmt.Sprintf("resumes/%s.pdf", gofakeit.UUID()),
	}
}
