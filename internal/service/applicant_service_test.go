package service

import (
	"context"
	"testing"

	"jobhive/internal/models"
	"jobhive/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func validApplyInput() ApplyInput {
	return ApplyInput{
		JobID:        10,
		UserID:       42,
		FullName:     "Ada Lovelace",
		ContactEmail: "ada@example.com",
		Resume:       &storage.Upload{Filename: "resume.pdf", Content: []byte("pdf-bytes")},
	}
}

func TestApply(t *testing.T) {
	files := storage.NewMemoryStore()
	var created *models.Applicant
	applicants := noopApplicantRepo()
	applicants.createFn = func(_ context.Context, a *models.Applicant) error {
		a.ID = 3
		created = a
		return nil
	}
	svc := NewApplicantService(applicants, noopJobRepo(), files)

	applicant, err := svc.Apply(context.Background(), validApplyInput())
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, uint(10), applicant.JobID)
	assert.Equal(t, uint(42), applicant.UserID)
	assert.NotEmpty(t, applicant.ResumePath)
	_, ok := files.Get(applicant.ResumePath)
	assert.True(t, ok)
}

func TestApplyJobNotFound(t *testing.T) {
	jobs := noopJobRepo()
	jobs.getByIDFn = func(_ context.Context, _ uint) (*models.Job, error) {
		return nil, errNotFound()
	}
	svc := NewApplicantService(noopApplicantRepo(), jobs, storage.NewMemoryStore())

	_, err := svc.Apply(context.Background(), validApplyInput())
	appErr := asAppError(t, err)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

// The duplicate pre-check must reject before the resume is stored or the
// form is validated, so no upload happens for a repeat applicant.
func TestApplyDuplicatePreCheck(t *testing.T) {
	files := storage.NewMemoryStore()
	applicants := noopApplicantRepo()
	applicants.existsFn = func(_ context.Context, _, _ uint) (bool, error) { return true, nil }
	svc := NewApplicantService(applicants, noopJobRepo(), files)

	in := validApplyInput()
	in.Resume = nil // would be a validation error if validation ran first

	_, err := svc.Apply(context.Background(), in)
	appErr := asAppError(t, err)
	assert.Equal(t, models.CodeDuplicate, appErr.Code)
	assert.Equal(t, 0, files.Len())
}

func TestApplyValidation(t *testing.T) {
	svc := NewApplicantService(noopApplicantRepo(), noopJobRepo(), storage.NewMemoryStore())

	tests := []struct {
		name   string
		mutate func(*ApplyInput)
		field  string
	}{
		{name: "short full name", mutate: func(in *ApplyInput) { in.FullName = "A" }, field: "full_name"},
		{name: "bad email", mutate: func(in *ApplyInput) { in.ContactEmail = "nope" }, field: "contact_email"},
		{name: "missing resume", mutate: func(in *ApplyInput) { in.Resume = nil }, field: "resume"},
		{
			name: "non-pdf resume",
			mutate: func(in *ApplyInput) {
				in.Resume = &storage.Upload{Filename: "resume.docx", Content: []byte("doc")}
			},
			field: "resume",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validApplyInput()
			tt.mutate(&in)
			_, err := svc.Apply(context.Background(), in)
			appErr := asAppError(t, err)
			assert.Equal(t, models.CodeValidation, appErr.Code)
			assert.Contains(t, appErr.Fields, tt.field)
		})
	}
}

// When the pre-check loses the race and the unique index fires, the stored
// resume is cleaned up and the caller still gets a duplicate error.
func TestApplyDuplicateRace(t *testing.T) {
	files := storage.NewMemoryStore()
	applicants := noopApplicantRepo()
	applicants.createFn = func(_ context.Context, _ *models.Applicant) error {
		return gorm.ErrDuplicatedKey
	}
	svc := NewApplicantService(applicants, noopJobRepo(), files)

	_, err := svc.Apply(context.Background(), validApplyInput())
	appErr := asAppError(t, err)
	assert.Equal(t, models.CodeDuplicate, appErr.Code)
	assert.Equal(t, 0, files.Len())
}

func TestDeleteApplicant(t *testing.T) {
	ctx := context.Background()
	files := storage.NewMemoryStore()
	resumeKey, _ := files.Store(ctx, "resumes", &storage.Upload{Filename: "cv.pdf", Content: []byte("pdf")})

	deleted := false
	applicants := noopApplicantRepo()
	applicants.getByIDFn = func(_ context.Context, id uint) (*models.Applicant, error) {
		return &models.Applicant{ID: id, JobID: 10, ResumePath: resumeKey, Job: models.Job{ID: 10, UserID: 1}}, nil
	}
	applicants.deleteFn = func(_ context.Context, _ uint) error {
		deleted = true
		return nil
	}
	svc := NewApplicantService(applicants, noopJobRepo(), files)

	require.NoError(t, svc.DeleteApplicant(ctx, 1, 5))
	assert.True(t, deleted)
	assert.Equal(t, 0, files.Len())
}

// Only the owner of the job the application targets may delete it; the
// applicant themselves cannot.
func TestDeleteApplicantOwnershipRequired(t *testing.T) {
	applicants := noopApplicantRepo()
	applicants.getByIDFn = func(_ context.Context, id uint) (*models.Applicant, error) {
		return &models.Applicant{ID: id, UserID: 42, Job: models.Job{ID: 10, UserID: 1}}, nil
	}
	svc := NewApplicantService(applicants, noopJobRepo(), storage.NewMemoryStore())

	err := svc.DeleteApplicant(context.Background(), 42, 5)
	appErr := asAppError(t, err)
	assert.Equal(t, models.CodeUnauthorized, appErr.Code)
}

func TestDeleteApplicantNotFound(t *testing.T) {
	applicants := noopApplicantRepo()
	applicants.getByIDFn = func(_ context.Context, _ uint) (*models.Applicant, error) {
		return nil, errNotFound()
	}
	svc := NewApplicantService(applicants, noopJobRepo(), storage.NewMemoryStore())

	err := svc.DeleteApplicant(context.Background(), 1, 99)
	appErr := asAppError(t, err)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
