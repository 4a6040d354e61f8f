package repository

import (
	"context"

	"jobhive/internal/models"

	"gorm.io/gorm"
)

// ApplicantRepository defines the interface for job application data operations
type ApplicantRepository interface {
	Create(ctx context.Context, applicant *models.Applicant) error
	GetByID(ctx context.Context, id uint) (*models.Applicant, error)
	ListByJob(ctx context.Context, jobID uint) ([]*models.Applicant, error)
	Exists(ctx context.Context, jobID, userID uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type applicantRepository struct {
	db *gorm.DB
}

// NewApplicantRepository creates a new applicant repository
func NewApplicantRepository(db *gorm.DB) ApplicantRepository {
	return &applicantRepository{db: db}
}

// Create persists the application. The unique index on (job_id, user_id) is
// the authoritative duplicate guard; a violation surfaces as
// gorm.ErrDuplicatedKey via TranslateError.
func (r *applicantRepository) Create(ctx context.Context, applicant *models.Applicant) error {
	return r.db.WithContext(ctx).Create(applicant).Error
}

func (r *applicantRepository) GetByID(ctx context.Context, id uint) (*models.Applicant, error) {
	var applicant models.Applicant
	err := r.db.WithContext(ctx).Preload("Job").First(&applicant, id).Error
	if err != nil {
		return nil, err
	}
	return &applicant, nil
}

func (r *applicantRepository) ListByJob(ctx context.Context, jobID uint) ([]*models.Applicant, error) {
	var applicants []*models.Applicant
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at DESC, id DESC").
		Find(&applicants).Error
	if err != nil {
		return nil, err
	}
	return applicants, nil
}

func (r *applicantRepository) Exists(ctx context.Context, jobID, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Applicant{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *applicantRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Applicant{}, id).Error
}
