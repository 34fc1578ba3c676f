package database

import (
	"fmt"
	"time"

	"crescendai-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
// Result rows are migrated before recordings so the SET NULL foreign key resolves.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
		// unique violations surface as gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	// AutoMigrate all models (no cycles)
	if !opts.SkipMigrate {
		all := []interface{}{
			&models.User{},
			&models.Account{},
			&models.Organization{},
			&models.OrganizationMember{},
			&models.RecordingResult{},
			&models.Recording{},
			&models.Thread{},
			&models.Folder{},
			&models.Email{},
			&models.ThreadFolder{},
			&models.UserFolder{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}
