package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate applies the schema for every registered model, including the
// composite unique indexes on applicants (job_id, user_id) and bookmarks
// (user_id, job_id) that back the duplicate guards.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(PersistentModels()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
