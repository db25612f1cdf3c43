package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/noah-isme/school-admin-api/internal/models"
)

// Migrate creates or updates every table. It is safe to run on each start.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
