package settings

import (
	"context"

	"github.com/BruksfildServices01/sling-library/internal/httperr"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

var ErrNotFound = httperr.ErrBusiness("settings_not_found")

type Repository interface {
	// GetSettings returns the single settings row or ErrNotFound.
	GetSettings(ctx context.Context) (*models.SiteSettings, error)
	SaveSettings(ctx context.Context, s *models.SiteSettings) error
}
