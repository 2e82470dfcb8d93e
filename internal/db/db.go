package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/sling-library/internal/config"
	"github.com/BruksfildServices01/sling-library/internal/domain/settings"
	"github.com/BruksfildServices01/sling-library/internal/logger"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

// NewDB creates the database when missing and opens the pool.
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	if err := ensureDatabase(cfg.DBUrl); err != nil {
		return nil, fmt.Errorf("ensure database: %w", err)
	}

	logLevel := gormlogger.Warn
	if !cfg.IsProduction() {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

// Migrate brings the schema up to date and seeds the settings row.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Carrier{},
		&models.BookingRequest{},
		&models.SiteSettings{},
		&models.User{},
		&models.UserRole{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	return seedSettings(ctx, db)
}

func seedSettings(ctx context.Context, db *gorm.DB) error {
	var existing models.SiteSettings
	err := db.WithContext(ctx).Order("created_at ASC").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("seed settings: %w", err)
	}

	s := settings.Defaults()
	if err := db.WithContext(ctx).Create(&s).Error; err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	logger.Info("seeded default site settings", "id", s.ID)
	return nil
}

func ensureDatabase(dsn string) error {
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return nil
	}

	parsed, err := url.Parse(dsn)
	if err != nil {
		return err
	}

	dbName := strings.TrimPrefix(parsed.Path, "/")
	if dbName == "" {
		return nil
	}

	parsed.Path = "/postgres"

	sqlDB, err := sql.Open("postgres", parsed.String())
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return err
	}

	var exists bool
	if err := sqlDB.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", dbName,
	).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	logger.Info("creating database", "name", dbName)
	_, err = sqlDB.Exec("CREATE DATABASE " + pq.QuoteIdentifier(dbName))
	return err
}
