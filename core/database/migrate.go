package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for the given models.
// GORM's AutoMigrate is additive: it never drops columns or tables.
func Migrate(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// MissingTables returns the names of the given tables that do not exist yet.
// Commands that rely on an already migrated schema use this to fail with a
// clear message instead of a raw SQL error.
func MissingTables(db *gorm.DB, tables ...string) []string {
	var missing []string
	for _, table := range tables {
		if !db.Migrator().HasTable(table) {
			missing = append(missing, table)
		}
	}
	return missing
}
