package service

import (
	"context"
	"errors"

	"jobhive/internal/models"
	"jobhive/internal/repository"

	"gorm.io/gorm"
)

// BookmarkService provides saved-job business logic.
type BookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	jobRepo      repository.JobRepository
}

func NewBookmarkService(bookmarkRepo repository.BookmarkRepository, jobRepo repository.JobRepository) *BookmarkService {
	return &BookmarkService{bookmarkRepo: bookmarkRepo, jobRepo: jobRepo}
}

// ListBookmarks returns the user's saved jobs, most recently saved first.
func (s *BookmarkService) ListBookmarks(ctx context.Context, userID uint, limit, offset int) (*models.JobPage, error) {
	jobs, total, err := s.bookmarkRepo.ListJobs(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &models.JobPage{Jobs: jobs, Total: total, Limit: limit, Offset: offset}, nil
}

// AddBookmark saves a job for the user. The pre-check gives a clean duplicate
// error; the unique index on (user_id, job_id) covers the race.
func (s *BookmarkService) AddBookmark(ctx context.Context, userID, jobID uint) error {
	if _, err := s.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Job", jobID)
		}
		return err
	}

	exists, err := s.bookmarkRepo.Exists(ctx, userID, jobID)
	if err != nil {
		return models.NewInternalError(err)
	}
	if exists {
		return models.NewDuplicateError("Job is already bookmarked")
	}

	if err := s.bookmarkRepo.Add(ctx, userID, jobID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewDuplicateError("Job is already bookmarked")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (s *BookmarkService) RemoveBookmark(ctx context.Context, userID, jobID uint) error {
	exists, err := s.bookmarkRepo.Exists(ctx, userID, jobID)
	if err != nil {
		return models.NewInternalError(err)
	}
	if !exists {
		return models.NewNotFoundError("Bookmark", jobID)
	}
	if err := s.bookmarkRepo.Remove(ctx, userID, jobID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
