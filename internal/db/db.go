package db

import (
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the database named by dsn. URLs with a sqlite scheme or a
// plain file path open an embedded sqlite database; anything else is treated
// as a Postgres DSN.
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	if path, ok := sqlitePath(dsn); ok {
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func sqlitePath(dsn string) (string, bool) {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		return strings.TrimPrefix(dsn, "sqlite://"), true
	case strings.HasPrefix(dsn, "sqlite:"):
		return strings.TrimPrefix(dsn, "sqlite:"), true
	case strings.HasPrefix(dsn, "file:"):
		return dsn, true
	case strings.HasSuffix(dsn, ".db"):
		return dsn, true
	}
	return "", false
}

// Configure applies connection pool settings.
func Configure(conn *gorm.DB, maxOpen, maxIdle int, maxLifetime, maxIdleTime time.Duration) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(maxLifetime)
	sqlDB.SetConnMaxIdleTime(maxIdleTime)
	return nil
}

// Migrate runs GORM auto-migrations for the core tables.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return errors.New("db connection is nil")
	}
	if err := conn.AutoMigrate(
		&Game{},
		&FamilyMember{},
		&GameRating{},
		&PlayLog{},
		&Event{},
	); err != nil {
		return err
	}
	log.Println("database migration complete")
	return nil
}
