// Package service provides application business logic (jobs, applicants, bookmarks, users).
package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"jobhive/internal/middleware"
	"jobhive/internal/models"
	"jobhive/internal/repository"
	"jobhive/internal/storage"
	"jobhive/internal/validation"

	"gorm.io/gorm"
)

// JobService provides job listing business logic.
type JobService struct {
	jobRepo       repository.JobRepository
	applicantRepo repository.ApplicantRepository
	files         storage.FileStore
}

// JobInput is the listing form payload. Logo is nil when no file was uploaded.
type JobInput struct {
	Title              string
	Description        string
	Salary             int
	Tags               string
	JobType            string
	Remote             bool
	Requirements       string
	Benefits           string
	Address            string
	City               string
	ContactEmail       string
	ContactPhone       string
	CompanyName        string
	CompanyDescription string
	CompanyWebsite     string
	Logo               *storage.Upload
}

func NewJobService(
	jobRepo repository.JobRepository,
	applicantRepo repository.ApplicantRepository,
	files storage.FileStore,
) *JobService {
	return &JobService{
		jobRepo:       jobRepo,
		applicantRepo: applicantRepo,
		files:         files,
	}
}

// validate collects every form violation into a field->messages map so the
// client can render errors next to each input instead of one at a time.
func (s *JobService) validate(in JobInput) map[string][]string {
	fields := map[string][]string{}
	add := func(field, msg string) {
		fields[field] = append(fields[field], msg)
	}

	if strings.TrimSpace(in.Title) == "" {
		add("title", "Title is required")
	} else if len(in.Title) > 255 {
		add("title", "Title must not exceed 255 characters")
	}
	if strings.TrimSpace(in.Description) == "" {
		add("description", "Description is required")
	}
	if in.Salary <= 0 {
		add("salary", "Salary is required")
	}
	if in.JobType == "" {
		add("job_type", "Job type is required")
	} else if !models.IsValidJobType(in.JobType) {
		add("job_type", fmt.Sprintf("Job type must be one of: %s", strings.Join(models.JobTypes, ", ")))
	}
	if strings.TrimSpace(in.City) == "" {
		add("city", "City is required")
	}
	if in.ContactEmail == "" {
		add("contact_email", "Contact email is required")
	} else if err := validation.ValidateEmail(in.ContactEmail); err != nil {
		add("contact_email", "Contact email must be a valid email address")
	}
	if strings.TrimSpace(in.ContactPhone) == "" {
		add("contact_phone", "Contact phone is required")
	}
	if strings.TrimSpace(in.CompanyName) == "" {
		add("company_name", "Company name is required")
	}
	if in.CompanyWebsite != "" {
		u, err := url.Parse(in.CompanyWebsite)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			add("company_website", "Company website must be a valid URL")
		}
	}
	if in.Logo != nil {
		if _, err := validation.ValidateImageUpload(in.Logo.Filename, in.Logo.Size(), validation.MaxLogoSize); err != nil {
			add("company_logo", "Company logo "+err.Error())
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

func (s *JobService) CreateJob(ctx context.Context, userID uint, in JobInput) (*models.Job, error) {
	if fields := s.validate(in); fields != nil {
		return nil, models.NewFieldValidationError(fields)
	}

	job := &models.Job{
		UserID:             userID,
		Title:              in.Title,
		Description:        in.Description,
		Salary:             in.Salary,
		Tags:               in.Tags,
		JobType:            in.JobType,
		Remote:             in.Remote,
		Requirements:       in.Requirements,
		Benefits:           in.Benefits,
		Address:            in.Address,
		City:               in.City,
		ContactEmail:       in.ContactEmail,
		ContactPhone:       in.ContactPhone,
		CompanyName:        in.CompanyName,
		CompanyDescription: in.CompanyDescription,
		CompanyWebsite:     in.CompanyWebsite,
	}

	if in.Logo != nil {
		key, err := s.files.Store(ctx, "logos", in.Logo)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		middleware.UploadsTotal.WithLabelValues("logo", "stored").Inc()
		job.CompanyLogo = key
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		// Don't leave an orphaned logo behind if the insert failed.
		deleteFileQuietly(ctx, s.files, job.CompanyLogo)
		return nil, models.NewInternalError(err)
	}
	return job, nil
}

func (s *JobService) GetJob(ctx context.Context, id uint) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Job", id)
	}
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) ListJobs(ctx context.Context, limit, offset int) (*models.JobPage, error) {
	jobs, total, err := s.jobRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &models.JobPage{Jobs: jobs, Total: total, Limit: limit, Offset: offset}, nil
}

// SearchJobs filters by keywords and location; either may be empty, and with
// both empty it is equivalent to ListJobs.
func (s *JobService) SearchJobs(ctx context.Context, keywords, location string, limit, offset int) (*models.JobPage, error) {
	jobs, total, err := s.jobRepo.Search(ctx, strings.TrimSpace(keywords), strings.TrimSpace(location), limit, offset)
	if err != nil {
		return nil, err
	}
	return &models.JobPage{Jobs: jobs, Total: total, Limit: limit, Offset: offset}, nil
}

// ListByOwner returns the user's own listings with applicants preloaded.
func (s *JobService) ListByOwner(ctx context.Context, ownerID uint) ([]*models.Job, error) {
	return s.jobRepo.ListByOwner(ctx, ownerID)
}

func (s *JobService) UpdateJob(ctx context.Context, userID, jobID uint, in JobInput) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Job", jobID)
	}
	if err != nil {
		return nil, err
	}
	if job.UserID != userID {
		return nil, models.NewUnauthorizedError("You are not authorized to update this job")
	}

	if fields := s.validate(in); fields != nil {
		return nil, models.NewFieldValidationError(fields)
	}

	if in.Logo != nil {
		// Replace the logo: the old file is gone either way, so its
		// deletion is best-effort.
		deleteFileQuietly(ctx, s.files, job.CompanyLogo)
		key, err := s.files.Store(ctx, "logos", in.Logo)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		middleware.UploadsTotal.WithLabelValues("logo", "stored").Inc()
		job.CompanyLogo = key
	}

	job.Title = in.Title
	job.Description = in.Description
	job.Salary = in.Salary
	job.Tags = in.Tags
	job.JobType = in.JobType
	job.Remote = in.Remote
	job.Requirements = in.Requirements
	job.Benefits = in.Benefits
	job.Address = in.Address
	job.City = in.City
	job.ContactEmail = in.ContactEmail
	job.ContactPhone = in.ContactPhone
	job.CompanyName = in.CompanyName
	job.CompanyDescription = in.CompanyDescription
	job.CompanyWebsite = in.CompanyWebsite

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, models.NewInternalError(err)
	}
	return job, nil
}

// DeleteJob removes the listing, its applications, and its bookmarks, then
// cleans up the stored logo and resumes. File deletion failures are logged
// and never fail the request.
func (s *JobService) DeleteJob(ctx context.Context, userID, jobID uint) error {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("Job", jobID)
	}
	if err != nil {
		return err
	}
	if job.UserID != userID {
		return models.NewUnauthorizedError("You are not authorized to delete this job")
	}

	applicants, err := s.applicantRepo.ListByJob(ctx, jobID)
	if err != nil {
		return models.NewInternalError(err)
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return models.NewInternalError(err)
	}

	deleteFileQuietly(ctx, s.files, job.CompanyLogo)
	for _, a := range applicants {
		deleteFileQuietly(ctx, s.files, a.ResumePath)
	}
	return nil
}

// deleteFileQuietly removes a stored file, logging instead of failing when the
// store is unavailable. Rows are the source of truth; files are cleanup.
func deleteFileQuietly(ctx context.Context, files storage.FileStore, key string) {
	if key == "" {
		return
	}
	if err := files.Delete(ctx, key); err != nil {
		middleware.UploadsTotal.WithLabelValues(kindForKey(key), "delete_failed").Inc()
		middleware.Logger.WarnContext(ctx, "failed to delete stored file",
			"key", key,
			"err", err,
		)
	}
}

// kindForKey maps an object key back to its upload kind by prefix.
func kindForKey(key string) string {
	switch {
	case strings.HasPrefix(key, "logos/"):
		return "logo"
	case strings.HasPrefix(key, "resumes/"):
		return "resume"
	case strings.HasPrefix(key, "avatars/"):
		return "avatar"
	}
	return "other"
}
