package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sling-library/internal/audit"
	"github.com/BruksfildServices01/sling-library/internal/httperr"
	"github.com/BruksfildServices01/sling-library/internal/httpresp"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logger *audit.Logger
}

func NewAuditLogsHandler(logger *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1, 0)
	limit := queryInt(c, "limit", 50, 200)

	filter := audit.ListFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	if from, err := time.Parse(models.DateLayout, c.Query("from")); err == nil {
		filter.From = from
	}
	if to, err := time.Parse(models.DateLayout, c.Query("to")); err == nil {
		filter.To = to.Add(24 * time.Hour)
	}

	logs, total, err := h.logger.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Could not load the audit trail.")
		return
	}

	httpresp.Page(c, logs, page, limit, total)
}
