package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/calorie-quest/backend/internal/models"
)

// Migrate creates or updates every table the application uses.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Reset drops every application table and recreates the schema.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(models.All()...); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	return Migrate(db)
}
