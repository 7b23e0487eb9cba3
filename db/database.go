package db

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Initialize sets up a database connection with WAL mode for concurrency.
// The handle is returned rather than stored in a package global so callers
// thread it through each operation explicitly.
func Initialize(dbPath string, environment string, busyTimeoutMS int) (*gorm.DB, error) {
	// Determine log level based on environment
	logLevel := logger.Info
	if environment == "production" {
		logLevel = logger.Warn
	}

	// WAL keeps readers off the writer lock; busy_timeout bounds how long a
	// writer waits for the lock before failing instead of hanging.
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d", dbPath, busyTimeoutMS)

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established (WAL mode enabled)")
	return database, nil
}

// AutoMigrate runs database migrations for the provided models
func AutoMigrate(database *gorm.DB, models ...interface{}) error {
	if database == nil {
		return fmt.Errorf("database not initialized")
	}

	if err := database.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// Close closes the database connection
func Close(database *gorm.DB) error {
	if database == nil {
		return nil
	}

	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
