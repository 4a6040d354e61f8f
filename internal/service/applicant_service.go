package service

import (
	"context"
	"errors"
	"strings"

	"jobhive/internal/middleware"
	"jobhive/internal/models"
	"jobhive/internal/repository"
	"jobhive/internal/storage"
	"jobhive/internal/validation"

	"gorm.io/gorm"
)

// ApplicantService provides job application business logic.
type ApplicantService struct {
	applicantRepo repository.ApplicantRepository
	jobRepo       repository.JobRepository
	files         storage.FileStore
}

// ApplyInput is the application form payload. Resume is required.
type ApplyInput struct {
	JobID        uint
	UserID       uint
	FullName     string
	ContactPhone string
	ContactEmail string
	Message      string
	Location     string
	Resume       *storage.Upload
}

func NewApplicantService(
	applicantRepo repository.ApplicantRepository,
	jobRepo repository.JobRepository,
	files storage.FileStore,
) *ApplicantService {
	return &ApplicantService{
		applicantRepo: applicantRepo,
		jobRepo:       jobRepo,
		files:         files,
	}
}

func (s *ApplicantService) validate(in ApplyInput) map[string][]string {
	fields := map[string][]string{}
	add := func(field, msg string) {
		fields[field] = append(fields[field], msg)
	}

	if len(strings.TrimSpace(in.FullName)) < 2 {
		add("full_name", "Full name must be at least 2 characters")
	}
	if in.ContactEmail == "" {
		add("contact_email", "Contact email is required")
	} else if err := validation.ValidateEmail(in.ContactEmail); err != nil {
		add("contact_email", "Contact email must be a valid email address")
	}
	if in.Resume == nil {
		add("resume", "Resume is required")
	} else if _, err := validation.ValidateResumeUpload(in.Resume.Filename, in.Resume.Size()); err != nil {
		add("resume", "Resume "+err.Error())
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Apply submits an application. The duplicate pre-check runs before the
// resume upload so a repeat applicant gets a clean error without us storing
// a file; the unique index on (job_id, user_id) remains the authoritative
// guard against a racing second submit.
func (s *ApplicantService) Apply(ctx context.Context, in ApplyInput) (*models.Applicant, error) {
	if _, err := s.jobRepo.GetByID(ctx, in.JobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Job", in.JobID)
		}
		return nil, err
	}

	exists, err := s.applicantRepo.Exists(ctx, in.JobID, in.UserID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if exists {
		return nil, models.NewDuplicateError("You have already applied to this job")
	}

	if fields := s.validate(in); fields != nil {
		return nil, models.NewFieldValidationError(fields)
	}

	resumePath, err := s.files.Store(ctx, "resumes", in.Resume)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	middleware.UploadsTotal.WithLabelValues("resume", "stored").Inc()

	applicant := &models.Applicant{
		JobID:        in.JobID,
		UserID:       in.UserID,
		FullName:     in.FullName,
		ContactPhone: in.ContactPhone,
		ContactEmail: in.ContactEmail,
		Message:      in.Message,
		Location:     in.Location,
		ResumePath:   resumePath,
	}

	if err := s.applicantRepo.Create(ctx, applicant); err != nil {
		// The insert failed, so the stored resume has no owning row.
		deleteFileQuietly(ctx, s.files, resumePath)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewDuplicateError("You have already applied to this job")
		}
		return nil, models.NewInternalError(err)
	}
	return applicant, nil
}

// DeleteApplicant removes an application. Only the owner of the job the
// application was submitted to may delete it. The stored resume is cleaned
// up best-effort.
func (s *ApplicantService) DeleteApplicant(ctx context.Context, userID, applicantID uint) error {
	applicant, err := s.applicantRepo.GetByID(ctx, applicantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("Applicant", applicantID)
	}
	if err != nil {
		return err
	}
	if applicant.Job.UserID != userID {
		return models.NewUnauthorizedError("You are not authorized to delete this applicant")
	}

	if err := s.applicantRepo.Delete(ctx, applicantID); err != nil {
		return models.NewInternalError(err)
	}

	deleteFileQuietly(ctx, s.files, applicant.ResumePath)
	return nil
}
