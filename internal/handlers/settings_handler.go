package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sling-library/internal/contact"
	"github.com/BruksfildServices01/sling-library/internal/content"
	domain "github.com/BruksfildServices01/sling-library/internal/domain/settings"
	"github.com/BruksfildServices01/sling-library/internal/httperr"
	"github.com/BruksfildServices01/sling-library/internal/httpresp"
	"github.com/BruksfildServices01/sling-library/internal/middleware"
	ucSettings "github.com/BruksfildServices01/sling-library/internal/usecase/settings"
)

type SettingsHandler struct {
	get    *ucSettings.GetSettings
	update *ucSettings.UpdateSettings
}

func NewSettingsHandler(get *ucSettings.GetSettings, update *ucSettings.UpdateSettings) *SettingsHandler {
	return &SettingsHandler{get: get, update: update}
}

// --------- Public ---------

func (h *SettingsHandler) Get(c *gin.Context) {
	httpresp.OK(c, h.get.Execute(c.Request.Context()))
}

func (h *SettingsHandler) Theme(c *gin.Context) {
	css := domain.ThemeCSS(h.get.Execute(c.Request.Context()))
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
}

func (h *SettingsHandler) Page(c *gin.Context) {
	page, err := content.Render(c.Param("slug"), h.get.Execute(c.Request.Context()))
	if err != nil {
		httperr.FromError(c, err, "page_render_failed")
		return
	}
	httpresp.OK(c, page)
}

func (h *SettingsHandler) ContactWhatsApp(c *gin.Context) {
	s := h.get.Execute(c.Request.Context())
	httpresp.OK(c, gin.H{"url": contact.CustomerChatLink(s, c.Query("message"))})
}

// --------- Admin ---------

// GetStored returns the saved record without projection so the admin form
// edits what is actually stored.
func (h *SettingsHandler) GetStored(c *gin.Context) {
	s, err := h.get.Stored(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, "settings_load_failed")
		return
	}
	httpresp.OK(c, s)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var patch domain.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid settings payload.")
		return
	}

	saved, err := h.update.Execute(c.Request.Context(), middleware.ActorID(c), patch)
	if err != nil {
		httperr.FromError(c, err, "settings_save_failed")
		return
	}
	httpresp.OK(c, saved)
}
