package seed

import (
	"fmt"
	"log"

	"jobhive/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumJobs     int
	ShouldClean bool
}

// All seeded accounts share this password so any of them works for manual
// testing: "password123".
var defaultPasswordHash = func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}()

// Seed populates the database with test data.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database with %d users and %d jobs...", opts.NumUsers, opts.NumJobs)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	f := NewFactory(db)

	users, err := createUsers(db, f, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("created %d users", len(users))

	jobs, err := createJobs(db, f, users, opts.NumJobs)
	if err != nil {
		return fmt.Errorf("failed to create jobs: %w", err)
	}
	log.Printf("created %d jobs", len(jobs))

	applied, err := createApplicants(db, f, users, jobs)
	if err != nil {
		return fmt.Errorf("failed to create applicants: %w", err)
	}
	log.Printf("created %d applications", applied)

	saved, err := createBookmarks(db, f, users, jobs)
	if err != nil {
		return fmt.Errorf("failed to create bookmarks: %w", err)
	}
	log.Printf("created %d bookmarks", saved)

	return nil
}

func clearData(db *gorm.DB) error {
	for _, table := range []string{"applicants", "bookmarks", "job_listings", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

// createUsers persists n users. The first one always has a fixed login
// (test@example.com) so manual testing doesn't require digging through logs.
func createUsers(db *gorm.DB, f *Factory, n int) ([]*models.User, error) {
	if n < 1 {
		n = 1
	}
	users := make([]*models.User, 0, n)

	known := f.BuildUser(func(u *models.User) {
		u.Name = "Test User"
		u.Email = "test@example.com"
	})
	users = append(users, known)

	for i := 1; i < n; i++ {
		users = append(users, f.BuildUser())
	}

	if err := db.CreateInBatches(users, 100).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func createJobs(db *gorm.DB, f *Factory, users []*models.User, n int) ([]*models.Job, error) {
	jobs := make([]*models.Job, 0, n)
	for i := 0; i < n; i++ {
		owner := users[f.rand.Intn(len(users))]
		jobs = append(jobs, f.BuildJob(owner))
	}
	if len(jobs) == 0 {
		return jobs, nil
	}
	if err := db.CreateInBatches(jobs, 100).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// createApplicants has roughly a third of the users apply to a few jobs each,
// skipping jobs they own and jobs they already applied to.
func createApplicants(db *gorm.DB, f *Factory, users []*models.User, jobs []*models.Job) (int, error) {
	if len(jobs) == 0 {
		return 0, nil
	}

	created := 0
	for _, user := range users {
		if f.rand.Intn(3) != 0 {
			continue
		}
		seen := map[uint]bool{}
		for i := 0; i < 1+f.rand.Intn(3); i++ {
			job := jobs[f.rand.Intn(len(jobs))]
			if job.UserID == user.ID || seen[job.ID] {
				continue
			}
			seen[job.ID] = true
			if err := db.Create(f.BuildApplicant(job, user)).Error; err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

func createBookmarks(db *gorm.DB, f *Factory, users []*models.User, jobs []*models.Job) (int, error) {
	if len(jobs) == 0 {
		return 0, nil
	}

	created := 0
	for _, user := range users {
		seen := map[uint]bool{}
		for i := 0; i < f.rand.Intn(4); i++ {
			job := jobs[f.rand.Intn(len(jobs))]
			if seen[job.ID] {
				continue
			}
			seen[job.ID] = true
			if err := db.Create(&models.Bookmark{UserID: user.ID, JobID: job.ID}).Error; err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}
