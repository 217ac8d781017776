package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type migrateProduct struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"size:64"`
}

func TestMigrateAndMissingTables(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:migrate_test?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	missing := MissingTables(db, "migrate_products", "absent_table")
	assert.Equal(t, []string{"migrate_products", "absent_table"}, missing)

	require.NoError(t, Migrate(db, &migrateProduct{}))

	missing = MissingTables(db, "migrate_products", "absent_table")
	assert.Equal(t, []string{"absent_table"}, missing)
}
