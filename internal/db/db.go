package db

import (
	"fmt"

	"trade_journal/internal/config" // Application configuration
	"trade_journal/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql"  // MySQL driver for GORM (hosted variant)
	"gorm.io/driver/sqlite" // SQLite driver for GORM (single-node variant)
	"gorm.io/gorm"          // GORM ORM library
)

// Open connects to the database selected by cfg.DBDriver.
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey on both drivers; the constraint, not any pre-check,
// is what decides duplicate registrations.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}
	switch cfg.DBDriver {
	case "mysql":
		dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
		return gorm.Open(mysql.Open(dsn), gormCfg)
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

// Migrate performs automatic migration for the database schema
func Migrate(cfg *config.Config) {
	db, err := Open(cfg) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := AutoMigrate(db); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}

// AutoMigrate creates or updates the users and trades tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.User{}, &domain.Trade{})
}
