package database

import "jobhive/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Job{},
		&models.Applicant{},
		&models.Bookmark{},
	}
}
