package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/sling-library/internal/audit"
	"github.com/BruksfildServices01/sling-library/internal/cache"
	domain "github.com/BruksfildServices01/sling-library/internal/domain/settings"
	"github.com/BruksfildServices01/sling-library/internal/infra/memory"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

type failingRepo struct{}

func (failingRepo) GetSettings(context.Context) (*models.SiteSettings, error) {
	return nil, errors.New("connection refused")
}

func (failingRepo) SaveSettings(context.Context, *models.SiteSettings) error {
	return errors.New("connection refused")
}

func str(s string) *string { return &s }

func TestGetSettingsFallsBackToDefaults(t *testing.T) {
	uc := NewGetSettings(failingRepo{}, cache.NewMemoryCache(), 5*time.Minute)
	assert.Equal(t, domain.Defaults(), uc.Execute(context.Background()))

	uc = NewGetSettings(memory.NewStore().Settings(), cache.NewMemoryCache(), 5*time.Minute)
	assert.Equal(t, domain.Defaults().HeroTitle, uc.Execute(context.Background()).HeroTitle)
}

func TestUpdateSettingsWritesThrough(t *testing.T) {
	store := memory.NewStore()
	c := cache.NewMemoryCache()
	d := audit.NewDispatcher(audit.New(store.Audit()))
	defer d.Close(context.Background())

	get := NewGetSettings(store.Settings(), c, 5*time.Minute)
	update := NewUpdateSettings(store.Settings(), c, d, 5*time.Minute)
	ctx := context.Background()

	// Prime the cache with the defaults.
	_ = get.Execute(ctx)

	saved, err := update.Execute(ctx, nil, domain.Patch{
		HeroTitle:    str("Carry them close"),
		PrimaryColor: str("340 80% 55%"),
		BrandName:    str("Renamed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", saved.BrandName)

	view := get.Execute(ctx)
	assert.Equal(t, "Carry them close", view.HeroTitle)
	assert.Equal(t, "340 80% 55%", view.PrimaryColor)
	assert.Equal(t, "Sheryl Slings", view.BrandName)

	stored, err := get.Stored(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.BrandName)
}

func TestUpdateSettingsRejectsBadColor(t *testing.T) {
	store := memory.NewStore()
	d := audit.NewDispatcher(audit.New(store.Audit()))
	defer d.Close(context.Background())

	update := NewUpdateSettings(store.Settings(), cache.NewMemoryCache(), d, time.Minute)
	_, err := update.Execute(context.Background(), nil, domain.Patch{AccentColor: str("orange")})
	require.Error(t, err)

	_, err = store.Settings().GetSettings(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
