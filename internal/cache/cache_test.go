package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheRoundTripAndExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryCache()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, SettingsKey, map[string]string{"brand_name": "Sheryl Slings"}, 5*time.Minute))

	var got map[string]string
	hit, err := m.Get(ctx, SettingsKey, &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "Sheryl Slings", got["brand_name"])

	now = now.Add(5 * time.Minute)
	hit, err = m.Get(ctx, SettingsKey, &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestMemoryCacheEvictKeepsFreshEntry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryCache()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, SettingsKey, "old", time.Minute))
	stale := m.entries[SettingsKey]

	// A Set lands after Get saw the expired entry but before it evicts.
	now = now.Add(2 * time.Minute)
	require.NoError(t, m.Set(ctx, SettingsKey, "new", time.Minute))
	m.evict(SettingsKey, stale)

	var got string
	hit, err := m.Get(ctx, SettingsKey, &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "new", got)

	m.evict(SettingsKey, m.entries[SettingsKey])
	hit, err = m.Get(ctx, SettingsKey, &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestMemoryCacheDeletePrefix(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryCache()
	for _, k := range []string{CarrierListKey(""), CarrierListKey("wraps"), CarrierKey("c1"), BookingListKey} {
		require.NoError(t, m.Set(ctx, k, 1, 0))
	}

	require.NoError(t, m.DeletePrefix(ctx, CarrierListPrefix))

	var v int
	for k, want := range map[string]bool{
		"carriers:list:all":     false,
		"carriers:list:wraps":   false,
		"carrier:c1":            true,
		"booking-requests:list": true,
	} {
		hit, err := m.Get(ctx, k, &v)
		require.NoError(t, err)
		assert.Equal(t, want, hit, k)
	}
}

func TestInvalidateBookingTransition(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryCache()
	keys := []string{CarrierListKey(""), CarrierListKey("wraps"), CarrierKey("c1"), CarrierKey("c2"), BookingListKey, SettingsKey}
	for _, k := range keys {
		require.NoError(t, m.Set(ctx, k, 1, 0))
	}

	require.NoError(t, Invalidate(ctx, m, Event{Kind: BookingTransitioned, CarrierID: "c1"}))

	var v int
	for k, want := range map[string]bool{
		"carriers:list:all":     false,
		"carriers:list:wraps":   false,
		"carrier:c1":            false,
		"carrier:c2":            true,
		"booking-requests:list": false,
		"site-settings":         true,
	} {
		hit, _ := m.Get(ctx, k, &v)
		assert.Equal(t, want, hit, k)
	}
}

func TestRules(t *testing.T) {
	assert.Equal(t, Invalidation{Prefixes: []string{"carriers:list:"}}, Rules(Event{Kind: CarrierCreated}))
	assert.Equal(t, Invalidation{Keys: []string{"booking-requests:list"}}, Rules(Event{Kind: BookingCreated}))
	assert.Equal(t,
		Invalidation{Keys: []string{"carrier:x"}, Prefixes: []string{"carriers:list:"}},
		Rules(Event{Kind: CarrierUpdated, CarrierID: "x"}))
	assert.Equal(t,
		Invalidation{Keys: []string{"carrier:x", "booking-requests:list"}, Prefixes: []string{"carriers:list:"}},
		Rules(Event{Kind: CarrierDeleted, CarrierID: "x"}))
	assert.Empty(t, Rules(Event{Kind: "unknown"}).Keys)
}

func TestFetchLoadsOnceWithinTTL(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryCache()
	calls := 0
	load := func(context.Context) ([]string, error) {
		calls++
		return []string{"Tula"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := Fetch(ctx, m, CarrierListKey(""), time.Minute, load)
		require.NoError(t, err)
		assert.Equal(t, []string{"Tula"}, got)
	}
	assert.Equal(t, 1, calls)
}

func TestFetchDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryCache()
	boom := errors.New("db down")

	_, err := Fetch(ctx, m, "k", time.Minute, func(context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)

	var v int
	hit, _ := m.Get(ctx, "k", &v)
	assert.False(t, hit)
}
