package database

import (
	"testing"

	"jobhive/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), NewGormConfig())
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestMigrate_SchemaRoundTrip(t *testing.T) {
	db := openTestDB(t)

	user := &models.User{Name: "Test User", Email: "test@example.com", Password: "hashed"}
	require.NoError(t, db.Create(user).Error)

	job := &models.Job{
		UserID:       user.ID,
		Title:        "Backend Engineer",
		Description:  "Build services",
		Salary:       90000,
		JobType:      models.JobTypeFullTime,
		City:         "Addis Ababa",
		ContactEmail: "jobs@example.com",
		ContactPhone: "555-0100",
		CompanyName:  "Example Co",
	}
	require.NoError(t, db.Create(job).Error)

	var got models.Job
	require.NoError(t, db.First(&got, job.ID).Error)
	assert.Equal(t, "Backend Engineer", got.Title)
	assert.Equal(t, user.ID, got.UserID)
}

func TestMigrate_UniqueIndexesEnforced(t *testing.T) {
	db := openTestDB(t)

	user := &models.User{Name: "U", Email: "u@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)
	job := &models.Job{
		UserID: user.ID, Title: "T", Description: "D", Salary: 1,
		JobType: models.JobTypeContract, City: "C",
		ContactEmail: "c@example.com", ContactPhone: "1", CompanyName: "Co",
	}
	require.NoError(t, db.Create(job).Error)

	first := &models.Applicant{
		JobID: job.ID, UserID: user.ID,
		FullName: "A B", ContactEmail: "a@example.com", ResumePath: "resumes/a.pdf",
	}
	require.NoError(t, db.Create(first).Error)

	dup := &models.Applicant{
		JobID: job.ID, UserID: user.ID,
		FullName: "A B", ContactEmail: "a@example.com", ResumePath: "resumes/b.pdf",
	}
	err := db.Create(dup).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	require.NoError(t, db.Create(&models.Bookmark{UserID: user.ID, JobID: job.ID}).Error)
	err = db.Create(&models.Bookmark{UserID: user.ID, JobID: job.ID}).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestPersistentModels_CoversAllEntities(t *testing.T) {
	assert.Len(t, PersistentModels(), 4)
}
