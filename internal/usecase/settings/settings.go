package settings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/sling-library/internal/audit"
	"github.com/BruksfildServices01/sling-library/internal/cache"
	domain "github.com/BruksfildServices01/sling-library/internal/domain/settings"
	"github.com/BruksfildServices01/sling-library/internal/httperr"
	"github.com/BruksfildServices01/sling-library/internal/logger"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

// ===============================
// Read
// ===============================

type GetSettings struct {
	repo  domain.Repository
	cache cache.Cache
	ttl   time.Duration
}

func NewGetSettings(repo domain.Repository, c cache.Cache, ttl time.Duration) *GetSettings {
	return &GetSettings{repo: repo, cache: c, ttl: ttl}
}

// Stored returns the saved record, or the defaults when nothing has been
// saved yet.
func (uc *GetSettings) Stored(ctx context.Context) (models.SiteSettings, error) {
	return cache.Fetch(ctx, uc.cache, cache.SettingsKey, uc.ttl,
		func(ctx context.Context) (models.SiteSettings, error) {
			s, err := uc.repo.GetSettings(ctx)
			if httperr.IsBusiness(err, "settings_not_found") {
				return domain.Defaults(), nil
			}
			if err != nil {
				return models.SiteSettings{}, err
			}
			return *s, nil
		})
}

// Execute returns the projected view. A failing store never breaks the
// storefront: the error is logged and the defaults are served.
func (uc *GetSettings) Execute(ctx context.Context) domain.View {
	s, err := uc.Stored(ctx)
	if err != nil {
		logger.Error("settings read failed, serving defaults", "error", err)
		return domain.Project(nil)
	}
	return domain.Project(&s)
}

// ===============================
// Update
// ===============================

type UpdateSettings struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
	ttl   time.Duration
}

func NewUpdateSettings(repo domain.Repository, c cache.Cache, audit *audit.Dispatcher, ttl time.Duration) *UpdateSettings {
	return &UpdateSettings{repo: repo, cache: c, audit: audit, ttl: ttl}
}

// Execute applies a validated patch and writes the result through to the
// cache.
func (uc *UpdateSettings) Execute(ctx context.Context, actorID *uuid.UUID, patch domain.Patch) (*models.SiteSettings, error) {
	if err := domain.ValidateUpdate(patch); err != nil {
		return nil, err
	}

	current, err := uc.repo.GetSettings(ctx)
	switch {
	case httperr.IsBusiness(err, "settings_not_found"):
		d := domain.Defaults()
		current = &d
	case err != nil:
		return nil, err
	}

	patch.ApplyTo(current)

	if err := uc.repo.SaveSettings(ctx, current); err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, cache.SettingsKey, current, uc.ttl); err != nil {
		logger.Warn("settings cache write failed", "error", err)
		_ = uc.cache.Delete(ctx, cache.SettingsKey)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   audit.ActionSettingsUpdated,
		Entity:   "site_settings",
		EntityID: &current.ID,
	})

	return current, nil
}
