package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SETTINGS_CACHE_TTL_SECONDS", "")
	t.Setenv("STORAGE_DRIVER", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 5*time.Minute, cfg.SettingsCacheTTL)
	assert.Equal(t, "postgres", cfg.StorageDriver)
	assert.False(t, cfg.S3Enabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("S3_BUCKET", "slings")
	t.Setenv("S3_PUBLIC_URL", "https://cdn.example/")
	t.Setenv("VERIFY_EMAIL_DOMAIN", "true")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "memory", cfg.StorageDriver)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.S3Enabled())
	assert.Equal(t, "https://cdn.example", cfg.S3PublicURL)
	assert.True(t, cfg.VerifyEmailDomain)
}

func TestValidate(t *testing.T) {
	cfg := &Config{AppEnv: "production", JWTSecret: defaultJWTSecret, StorageDriver: "postgres", ImageQuality: 80}
	require.Error(t, cfg.Validate())

	cfg.JWTSecret = "s3cret"
	require.NoError(t, cfg.Validate())

	cfg.StorageDriver = "sqlite"
	require.Error(t, cfg.Validate())

	cfg.StorageDriver = "memory"
	cfg.ImageQuality = 0
	require.Error(t, cfg.Validate())
}
