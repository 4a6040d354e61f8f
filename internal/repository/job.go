package repository

import (
	"context"
	"strings"

	"jobhive/internal/cache"
	"jobhive/internal/models"

	"gorm.io/gorm"
)

// JobRepository defines the interface for job listing data operations
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id uint) (*models.Job, error)
	List(ctx context.Context, limit, offset int) ([]*models.Job, int64, error)
	Search(ctx context.Context, keywords, location string, limit, offset int) ([]*models.Job, int64, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id uint) error
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	err := r.db.WithContext(ctx).Create(job).Error
	if err == nil {
		cache.InvalidateJobsList(ctx)
	}
	return err
}

func (r *jobRepository) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := cache.Aside(ctx, cache.JobKey(id), &job, cache.JobTTL, func() error {
		return r.db.WithContext(ctx).First(&job, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// firstPageLimit is the default browse page size; only that exact page is
// cached since it is what the landing page hammers.
const firstPageLimit = 20

type jobListPage struct {
	Jobs  []*models.Job `json:"jobs"`
	Total int64         `json:"total"`
}

func (r *jobRepository) List(ctx context.Context, limit, offset int) ([]*models.Job, int64, error) {
	if limit == firstPageLimit && offset == 0 {
		var page jobListPage
		err := cache.Aside(ctx, cache.JobsFirstPageKey, &page, cache.JobsFirstPageTTL, func() error {
			var err error
			page.Jobs, page.Total, err = r.list(ctx, limit, offset)
			return err
		})
		if err != nil {
			return nil, 0, err
		}
		return page.Jobs, page.Total, nil
	}
	return r.list(ctx, limit, offset)
}

func (r *jobRepository) list(ctx context.Context, limit, offset int) ([]*models.Job, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Job{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []*models.Job
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// Search filters case-insensitively. Keywords match title, description, or
// tags; location matches address or city; both groups are ANDed. LOWER(...)
// LIKE keeps the query portable across Postgres and the sqlite test suite.
func (r *jobRepository) Search(ctx context.Context, keywords, location string, limit, offset int) ([]*models.Job, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Job{})

	if keywords != "" {
		like := "%" + strings.ToLower(keywords) + "%"
		q = q.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(tags) LIKE ?)", like, like, like)
	}
	if location != "" {
		like := "%" + strings.ToLower(location) + "%"
		q = q.Where("(LOWER(address) LIKE ? OR LOWER(city) LIKE ?)", like, like)
	}

	// Count on a fresh session so the main chain's statement is untouched.
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []*models.Job
	err := q.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// ListByOwner returns every job posted by ownerID with applicants preloaded,
// newest first. Used by the dashboard, so no pagination.
func (r *jobRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*models.Job, error) {
	var jobs []*models.Job
	err := r.db.WithContext(ctx).
		Preload("Applicants").
		Where("user_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) Update(ctx context.Context, job *models.Job) error {
	if err := r.db.WithContext(ctx).Save(job).Error; err != nil {
		return err
	}
	cache.InvalidateJob(ctx, job.ID)
	cache.InvalidateJobsList(ctx)
	return nil
}

// Delete removes the job and its dependent applicants and bookmarks in one
// transaction so no orphan rows survive a partial failure.
func (r *jobRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Applicant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", id).Delete(&models.Bookmark{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Job{}, id).Error
	})
	if err != nil {
		return err
	}
	cache.InvalidateJob(ctx, id)
	cache.InvalidateJobsList(ctx)
	return nil
}
