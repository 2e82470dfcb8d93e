package memory

import (
	"context"

	"github.com/BruksfildServices01/sling-library/internal/audit"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

type AuditRepository struct{ *Store }

func (r AuditRepository) CreateAuditLog(_ context.Context, log *models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log.ID = uint(len(r.audit) + 1)
	if log.CreatedAt.IsZero() {
		log.CreatedAt = r.now()
	}
	r.audit = append(r.audit, *log)
	return nil
}

// ListAuditLogs returns newest first.
func (r AuditRepository) ListAuditLogs(_ context.Context, filter audit.ListFilter) ([]models.AuditLog, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.AuditLog
	for i := len(r.audit) - 1; i >= 0; i-- {
		l := r.audit[i]
		if filter.Action != "" && l.Action != filter.Action {
			continue
		}
		if filter.Entity != "" && l.Entity != filter.Entity {
			continue
		}
		if !filter.From.IsZero() && l.CreatedAt.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && !l.CreatedAt.Before(filter.To) {
			continue
		}
		matched = append(matched, l)
	}

	total := int64(len(matched))
	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return []models.AuditLog{}, total, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

var _ audit.Store = AuditRepository{}
