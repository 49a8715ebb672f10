package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 60, cfg.Server.CacheMaxAge)
	assert.Equal(t, 30, cfg.Server.CacheStale)
	assert.Equal(t, "submissions", cfg.Feed.SubmissionsKey)
	assert.Equal(t, 15, cfg.Feed.TimeoutSeconds)
	assert.Contains(t, cfg.Feed.UserAgent, "Mozilla/5.0")
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("FEED_URL", "https://example.com/stores.json")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("FEED_REQUESTS_PER_MINUTE", "5")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/stores.json", cfg.Feed.URL)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Feed.RequestsPerMinute)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FEED_SUBMISSIONS_KEY=jira\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("FEED_SUBMISSIONS_KEY") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "jira", cfg.Feed.SubmissionsKey)
}

func TestValidate(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FEED_URL (required)")

	cfg.Feed.URL = "not a url"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FEED_URL (url)")

	cfg.Feed.URL = "https://example.com/stores.json"
	cfg.Log.Level = "verbose"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL (oneof)")
}
