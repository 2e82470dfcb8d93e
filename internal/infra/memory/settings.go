package memory

import (
	"context"

	"github.com/BruksfildServices01/sling-library/internal/domain/settings"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

type SettingsRepository struct{ *Store }

func (r SettingsRepository) GetSettings(_ context.Context) (*models.SiteSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.settings == nil {
		return nil, settings.ErrNotFound
	}
	s := *r.settings
	return &s, nil
}

func (r SettingsRepository) SaveSettings(_ context.Context, s *models.SiteSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.touch(&s.BaseModel, r.settings == nil)
	stored := *s
	r.settings = &stored
	return nil
}

var _ settings.Repository = SettingsRepository{}
