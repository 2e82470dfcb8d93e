package main

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/sling-library/internal/audit"
	"github.com/BruksfildServices01/sling-library/internal/cache"
	"github.com/BruksfildServices01/sling-library/internal/config"
	dbpkg "github.com/BruksfildServices01/sling-library/internal/db"
	"github.com/BruksfildServices01/sling-library/internal/infra/memory"
	infraRepo "github.com/BruksfildServices01/sling-library/internal/infra/repository"
	"github.com/BruksfildServices01/sling-library/internal/logger"
	"github.com/BruksfildServices01/sling-library/internal/routes"
	"github.com/BruksfildServices01/sling-library/internal/storage"
)

// loadConfig reads and validates the environment and sets up logging.
func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	logger.Init(cfg.AppEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openDB connects to postgres and migrates the schema.
func openDB(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return nil, err
	}
	if err := dbpkg.Migrate(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}

// buildInfra wires the storage driver, cache and image store selected by
// cfg. The returned cleanup releases whatever was opened.
func buildInfra(ctx context.Context, cfg *config.Config) (routes.Infra, func(), error) {
	var infra routes.Infra
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.StorageDriver {
	case "memory":
		logger.Warn("using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		infra.Carriers = store.Carriers()
		infra.Bookings = store.Bookings()
		infra.Settings = store.Settings()
		infra.Users = store.Users()
		infra.Audit = store.Audit()
	default:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return infra, cleanup, err
		}
		if sqlDB, err := db.DB(); err == nil {
			closers = append(closers, func() { _ = sqlDB.Close() })
		}
		infra.Carriers = infraRepo.NewCarrierGormRepository(db)
		infra.Bookings = infraRepo.NewBookingGormRepository(db)
		infra.Settings = infraRepo.NewSettingsGormRepository(db)
		infra.Users = infraRepo.NewUserGormRepository(db)
		infra.Audit = infraRepo.NewAuditGormRepository(db)
	}

	if cfg.RedisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			cleanup()
			return infra, func() {}, fmt.Errorf("connect redis: %w", err)
		}
		closers = append(closers, func() { _ = rc.Close() })
		infra.Cache = rc
	} else {
		infra.Cache = cache.NewMemoryCache()
	}

	if cfg.S3Enabled() {
		s3Store, err := storage.NewS3Store(cfg)
		if err != nil {
			cleanup()
			return infra, func() {}, err
		}
		infra.Images = s3Store
	} else {
		logger.Warn("S3_BUCKET not set, image uploads are disabled")
		infra.Images = storage.DisabledStore{}
	}

	infra.Dispatcher = audit.NewDispatcher(audit.New(infra.Audit))

	return infra, cleanup, nil
}
