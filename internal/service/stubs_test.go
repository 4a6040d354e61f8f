package service

import (
	"context"

	"jobhive/internal/models"

	"gorm.io/gorm"
)

func errNotFound() error {
	return gorm.ErrRecordNotFound
}

// jobRepoStub is a stub for repository.JobRepository.
type jobRepoStub struct {
	createFn      func(context.Context, *models.Job) error
	getByIDFn     func(context.Context, uint) (*models.Job, error)
	listFn        func(context.Context, int, int) ([]*models.Job, int64, error)
	searchFn      func(context.Context, string, string, int, int) ([]*models.Job, int64, error)
	listByOwnerFn func(context.Context, uint) ([]*models.Job, error)
	updateFn      func(context.Context, *models.Job) error
	deleteFn      func(context.Context, uint) error
}

func (s *jobRepoStub) Create(ctx context.Context, job *models.Job) error {
	return s.createFn(ctx, job)
}
func (s *jobRepoStub) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	return s.getByIDFn(ctx, id)
}
func (s *jobRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Job, int64, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *jobRepoStub) Search(ctx context.Context, keywords, location string, limit, offset int) ([]*models.Job, int64, error) {
	return s.searchFn(ctx, keywords, location, limit, offset)
}
func (s *jobRepoStub) ListByOwner(ctx context.Context, ownerID uint) ([]*models.Job, error) {
	return s.listByOwnerFn(ctx, ownerID)
}
func (s *jobRepoStub) Update(ctx context.Context, job *models.Job) error {
	return s.updateFn(ctx, job)
}
func (s *jobRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopJobRepo() *jobRepoStub {
	return &jobRepoStub{
		createFn:      func(_ context.Context, _ *models.Job) error { return nil },
		getByIDFn:     func(_ context.Context, _ uint) (*models.Job, error) { return &models.Job{}, nil },
		listFn:        func(_ context.Context, _, _ int) ([]*models.Job, int64, error) { return nil, 0, nil },
		searchFn:      func(_ context.Context, _, _ string, _, _ int) ([]*models.Job, int64, error) { return nil, 0, nil },
		listByOwnerFn: func(_ context.Context, _ uint) ([]*models.Job, error) { return nil, nil },
		updateFn:      func(_ context.Context, _ *models.Job) error { return nil },
		deleteFn:      func(_ context.Context, _ uint) error { return nil },
	}
}

// applicantRepoStub is a stub for repository.ApplicantRepository.
type applicantRepoStub struct {
	createFn    func(context.Context, *models.Applicant) error
	getByIDFn   func(context.Context, uint) (*models.Applicant, error)
	listByJobFn func(context.Context, uint) ([]*models.Applicant, error)
	existsFn    func(context.Context, uint, uint) (bool, error)
	deleteFn    func(context.Context, uint) error
}

func (s *applicantRepoStub) Create(ctx context.Context, applicant *models.Applicant) error {
	return s.createFn(ctx, applicant)
}
func (s *applicantRepoStub) GetByID(ctx context.Context, id uint) (*models.Applicant, error) {
	return s.getByIDFn(ctx, id)
}
func (s *applicantRepoStub) ListByJob(ctx context.Context, jobID uint) ([]*models.Applicant, error) {
	return s.listByJobFn(ctx, jobID)
}
func (s *applicantRepoStub) Exists(ctx context.Context, jobID, userID uint) (bool, error) {
	return s.existsFn(ctx, jobID, userID)
}
func (s *applicantRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopApplicantRepo() *applicantRepoStub {
	return &applicantRepoStub{
		createFn:    func(_ context.Context, _ *models.Applicant) error { return nil },
		getByIDFn:   func(_ context.Context, _ uint) (*models.Applicant, error) { return &models.Applicant{}, nil },
		listByJobFn: func(_ context.Context, _ uint) ([]*models.Applicant, error) { return nil, nil },
		existsFn:    func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		deleteFn:    func(_ context.Context, _ uint) error { return nil },
	}
}

// bookmarkRepoStub is a stub for repository.BookmarkRepository.
type bookmarkRepoStub struct {
	existsFn   func(context.Context, uint, uint) (bool, error)
	addFn      func(context.Context, uint, uint) error
	removeFn   func(context.Context, uint, uint) error
	listJobsFn func(context.Context, uint, int, int) ([]*models.Job, int64, error)
}

func (s *bookmarkRepoStub) Exists(ctx context.Context, userID, jobID uint) (bool, error) {
	return s.existsFn(ctx, userID, jobID)
}
func (s *bookmarkRepoStub) Add(ctx context.Context, userID, jobID uint) error {
	return s.addFn(ctx, userID, jobID)
}
func (s *bookmarkRepoStub) Remove(ctx context.Context, userID, jobID uint) error {
	return s.removeFn(ctx, userID, jobID)
}
func (s *bookmarkRepoStub) ListJobs(ctx context.Context, userID uint, limit, offset int) ([]*models.Job, int64, error) {
	return s.listJobsFn(ctx, userID, limit, offset)
}

func noopBookmarkRepo() *bookmarkRepoStub {
	return &bookmarkRepoStub{
		existsFn:   func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		addFn:      func(_ context.Context, _, _ uint) error { return nil },
		removeFn:   func(_ context.Context, _, _ uint) error { return nil },
		listJobsFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Job, int64, error) { return nil, 0, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn     func(context.Context, *models.User) error
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	updateFn     func(context.Context, *models.User) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:     func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:    func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.User) error { return nil },
	}
}
