// Package cache is the read-through cache in front of carriers, booking
// requests and settings. Values are stored as JSON so both drivers behave
// the same way.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	// Get decodes the value under key into dest and reports a hit.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// DeletePrefix drops every key starting with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}

// ===============================
// Keys
// ===============================

const (
	CarrierListPrefix = "carriers:list:"
	BookingListKey    = "booking-requests:list"
	SettingsKey       = "site-settings"
	revokedPrefix     = "session:revoked:"
)

// CarrierListKey is the key of the stored carrier list for a category, or of
// the whole catalog when category is empty.
func CarrierListKey(category string) string {
	if category == "" {
		return CarrierListPrefix + "all"
	}
	return CarrierListPrefix + category
}

func CarrierKey(id string) string {
	return "carrier:" + id
}

func RevokedTokenKey(jti string) string {
	return revokedPrefix + jti
}
