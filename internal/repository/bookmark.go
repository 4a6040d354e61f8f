package repository

import (
	"context"

	"jobhive/internal/models"

	"gorm.io/gorm"
)

// BookmarkRepository defines the interface for saved-job data operations
type BookmarkRepository interface {
	Exists(ctx context.Context, userID, jobID uint) (bool, error)
	Add(ctx context.Context, userID, jobID uint) error
	Remove(ctx context.Context, userID, jobID uint) error
	ListJobs(ctx context.Context, userID uint, limit, offset int) ([]*models.Job, int64, error)
}

type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository creates a new bookmark repository
func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (r *bookmarkRepository) Exists(ctx context.Context, userID, jobID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Bookmark{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Add creates the association. The unique index on (user_id, job_id) guards
// the race between the service-level pre-check and this insert; a violation
// surfaces as gorm.ErrDuplicatedKey.
func (r *bookmarkRepository) Add(ctx context.Context, userID, jobID uint) error {
	return r.db.WithContext(ctx).Create(&models.Bookmark{UserID: userID, JobID: jobID}).Error
}

func (r *bookmarkRepository) Remove(ctx context.Context, userID, jobID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Delete(&models.Bookmark{}).Error
}

// ListJobs returns the jobs the user bookmarked, most recently saved first.
func (r *bookmarkRepository) ListJobs(ctx context.Context, userID uint, limit, offset int) ([]*models.Job, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Joins("JOIN bookmarks ON bookmarks.job_id = job_listings.id").
		Where("bookmarks.user_id = ?", userID)

	// Count on a fresh session so the main chain's statement is untouched.
	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []*models.Job
	err := base.
		Order("bookmarks.created_at DESC, bookmarks.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}
