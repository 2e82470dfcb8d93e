package audit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/sling-library/internal/models"
)

type recordingStore struct {
	mu   sync.Mutex
	logs []models.AuditLog
}

func (s *recordingStore) CreateAuditLog(_ context.Context, log *models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, *log)
	return nil
}

func (s *recordingStore) ListAuditLogs(context.Context, ListFilter) ([]models.AuditLog, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logs, int64(len(s.logs)), nil
}

func TestDispatcherWritesOnClose(t *testing.T) {
	store := &recordingStore{}
	d := NewDispatcher(New(store))

	actor := uuid.New()
	booking := uuid.New()
	d.Dispatch(Event{
		ActorID:  &actor,
		Action:   ActionBookingApproved,
		Entity:   "booking_request",
		EntityID: &booking,
		Metadata: map[string]string{"return_date": "2024-01-08"},
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))
	require.NoError(t, d.Close(ctx))

	logs, total, err := store.ListAuditLogs(ctx, ListFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, ActionBookingApproved, logs[0].Action)
	assert.Equal(t, &booking, logs[0].EntityID)
	assert.JSONEq(t, `{"return_date":"2024-01-08"}`, logs[0].Metadata)
}

func TestDispatchAfterCloseIsDropped(t *testing.T) {
	store := &recordingStore{}
	d := NewDispatcher(New(store))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: ActionCarrierCreated, Entity: "carrier"})
	})

	_, total, err := store.ListAuditLogs(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestConcurrentDispatchAndClose(t *testing.T) {
	d := NewDispatcher(New(&recordingStore{}))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				d.Dispatch(Event{Action: ActionCarrierUpdated, Entity: "carrier"})
			}
		}()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NotPanics(t, func() { _ = d.Close(ctx) })
	wg.Wait()
}
