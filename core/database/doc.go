// Package database handles database connections and schema migration.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL or SQLite connections based on the application's configuration.
//
// # Connect
//
// The generic Connect function establishes a connection with sane pool settings and
// DSN-level timeouts, and verifies it with a ping before returning.
//
// # Migration
//
// Migrate wraps GORM's AutoMigrate for the catalog models, and MissingTables lets
// read-only commands detect an unmigrated schema up front.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	err = database.Migrate(db, models.All()...)
package database
