package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"UPSTASH_REDIS_REST_URL", "UPSTASH_REDIS_REST_TOKEN", "REDIS_URL", "ADMIN_USERS", "RETENTION_CAP", "DISPLAY_TIMEZONE"} {
		t.Setenv(key, "")
	}
	t.Setenv("RETENTION_CAP", "200")
	t.Setenv("DISPLAY_TIMEZONE", "Europe/Amsterdam")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.Store.RetentionCap)
	assert.Equal(t, 5*time.Second, cfg.Store.Timeout)
	assert.Equal(t, 5*time.Second, cfg.Geolocation.Timeout)
	assert.Equal(t, "Europe/Amsterdam", cfg.Server.DisplayTimezone.String())
	assert.Empty(t, cfg.Store.UpstashURL)
	assert.False(t, cfg.OIDC.Enabled())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("UPSTASH_REDIS_REST_URL", "https://example.upstash.io")
	t.Setenv("UPSTASH_REDIS_REST_TOKEN", "token")
	t.Setenv("RETENTION_CAP", "50")
	t.Setenv("GEOLOCATION_CACHE_TTL", "10m")
	t.Setenv("GEOLOCATION_API_URL", "http://geo.local/json/")
	t.Setenv("ADMIN_USERS", "alice, bob ,")
	t.Setenv("DISPLAY_TIMEZONE", "UTC")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://example.upstash.io", cfg.Store.UpstashURL)
	assert.Equal(t, 50, cfg.Store.RetentionCap)
	assert.Equal(t, 10*time.Minute, cfg.Geolocation.CacheTTL)
	assert.Equal(t, "http://geo.local/json", cfg.Geolocation.APIURL)
	assert.Equal(t, []string{"alice", "bob"}, cfg.Auth.AdminUsers)
}

func TestFromEnvHalfConfiguredUpstashIsIgnored(t *testing.T) {
	t.Setenv("UPSTASH_REDIS_REST_URL", "https://example.upstash.io")
	t.Setenv("UPSTASH_REDIS_REST_TOKEN", "")
	t.Setenv("DISPLAY_TIMEZONE", "UTC")
	t.Setenv("RETENTION_CAP", "200")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Empty(t, cfg.Store.UpstashURL)
	assert.Empty(t, cfg.Store.UpstashToken)
}

func TestFromEnvInvalidValues(t *testing.T) {
	t.Setenv("STORE_TIMEOUT", "soon")
	t.Setenv("DISPLAY_TIMEZONE", "Mars/Olympus")
	t.Setenv("RETENTION_CAP", "1")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_TIMEOUT")
	assert.Contains(t, err.Error(), "DISPLAY_TIMEZONE")
	assert.Contains(t, err.Error(), "RETENTION_CAP")
}

func TestIsAdmin(t *testing.T) {
	open := AuthConfig{}
	assert.True(t, open.IsAdmin("anyone"))
	assert.False(t, open.IsAdmin(""))

	restricted := AuthConfig{AdminUsers: []string{"alice"}}
	assert.True(t, restricted.IsAdmin("alice"))
	assert.False(t, restricted.IsAdmin("bob"))
}
