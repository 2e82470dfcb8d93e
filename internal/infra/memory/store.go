// Package memory keeps every table in process. It backs STORAGE_DRIVER=memory
// and the handler tests; nothing survives a restart.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/sling-library/internal/models"
)

type Store struct {
	mu sync.RWMutex

	carriers map[uuid.UUID]models.Carrier
	bookings map[uuid.UUID]models.BookingRequest
	settings *models.SiteSettings
	users    map[uuid.UUID]models.User
	roles    map[uuid.UUID][]string
	audit    []models.AuditLog

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		carriers: map[uuid.UUID]models.Carrier{},
		bookings: map[uuid.UUID]models.BookingRequest{},
		users:    map[uuid.UUID]models.User{},
		roles:    map[uuid.UUID][]string{},
		now:      time.Now,
	}
}

// touch fills id and timestamps the way the gorm hooks do.
func (s *Store) touch(b *models.BaseModel, creating bool) {
	now := s.now()
	if creating {
		if b.ID == uuid.Nil {
			b.ID = uuid.New()
		}
		if b.CreatedAt.IsZero() {
			b.CreatedAt = now
		}
	}
	b.UpdatedAt = now
}

func cloneCarrier(c models.Carrier) models.Carrier {
	c.CarryPositions = append([]string(nil), c.CarryPositions...)
	c.Images = append([]string(nil), c.Images...)
	if c.NextAvailableDate != nil {
		d := *c.NextAvailableDate
		c.NextAvailableDate = &d
	}
	return c
}

func (s *Store) Carriers() CarrierRepository { return CarrierRepository{s} }

func (s *Store) Bookings() BookingRepository { return BookingRepository{s} }

func (s *Store) Settings() SettingsRepository { return SettingsRepository{s} }

func (s *Store) Users() UserRepository { return UserRepository{s} }

func (s *Store) Audit() AuditRepository { return AuditRepository{s} }
