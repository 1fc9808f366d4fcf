package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inEmptyDir runs the test from a directory without config.yaml or .env.
func inEmptyDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	inEmptyDir(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, "primary", cfg.CalendarID)
	assert.Equal(t, "America/Los_Angeles", cfg.DefaultTimezone)
	assert.Equal(t, 20*time.Second, cfg.Upstream.Timeout)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 60, cfg.RateLimit.PerMin)
	assert.Equal(t, 8787, cfg.Google.OAuthPort)
}

func TestLoad_Environment(t *testing.T) {
	inEmptyDir(t)
	t.Setenv("GOOGLE_CLIENT_ID", "  client-id ")
	t.Setenv("GOOGLE_CLIENT_SECRET", "secret")
	t.Setenv("GOOGLE_REFRESH_TOKEN", "1//refresh\n")
	t.Setenv("CALENDAR_ID", "team@example.com")
	t.Setenv("DEFAULT_TIMEZONE", "Europe/Berlin")
	t.Setenv("HTTP_SERVER_PORT", "9090")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "client-id", cfg.Google.ClientID)
	assert.Equal(t, "secret", cfg.Google.ClientSecret)
	assert.Equal(t, "1//refresh", cfg.Google.RefreshToken)
	assert.Equal(t, "team@example.com", cfg.CalendarID)
	assert.Equal(t, "Europe/Berlin", cfg.DefaultTimezone)
	assert.Equal(t, 9090, cfg.HTTPServer.Port)
}

func TestLoad_DotEnvAndFile(t *testing.T) {
	inEmptyDir(t)
	require.NoError(t, os.WriteFile(".env", []byte("RATE_LIMIT_PER_MIN=5\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(".", "config.yaml"), []byte("calendar_id: ops@example.com\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("RATE_LIMIT_PER_MIN") })

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", cfg.CalendarID)
	assert.Equal(t, 5, cfg.RateLimit.PerMin)
}

func TestLoad_RateLimitOptIn(t *testing.T) {
	inEmptyDir(t)
	t.Setenv("RATE_LIMIT_ENABLED", "true")

	cfg, err := Load()

	require.NoError(t, err)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 60, cfg.RateLimit.PerMin)
}

func TestLoadAuthHelper(t *testing.T) {
	t.Run("Missing credentials", func(t *testing.T) {
		inEmptyDir(t)
		t.Setenv("GOOGLE_CLIENT_ID", "")
		t.Setenv("GOOGLE_CLIENT_SECRET", "secret")

		_, err := LoadAuthHelper()

		assert.ErrorIs(t, err, ErrMissingClientCredentials)
	})

	t.Run("Custom port", func(t *testing.T) {
		inEmptyDir(t)
		t.Setenv("GOOGLE_CLIENT_ID", "id")
		t.Setenv("GOOGLE_CLIENT_SECRET", "secret")
		t.Setenv("GOOGLE_OAUTH_PORT", "9999")

		cfg, err := LoadAuthHelper()

		require.NoError(t, err)
		assert.Equal(t, 9999, cfg.Google.OAuthPort)
	})
}
