package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "config-test-secret-32-characters!"

// chTempDir runs the test from an empty directory so a developer's local
// config.yaml cannot bleed into assertions.
func chTempDir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(wd))
	})
}

func TestLoadDefaults(t *testing.T) {
	chTempDir(t)
	t.Setenv("TEAMCAL_AUTH_JWT_SECRET", testSecret)
	t.Setenv("TEAMCAL_DIGEST_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "tasks.json", cfg.Storage.TasksFile)
	assert.Equal(t, "accounts.yaml", cfg.Storage.AccountsFile)
	assert.Equal(t, "excels", cfg.Storage.ExportDir)
	assert.Equal(t, 720, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, 0, cfg.Digest.Hour)
	assert.Equal(t, 0, cfg.Digest.Minute)
	assert.Equal(t, "Asia/Seoul", cfg.Digest.Timezone)
	assert.False(t, cfg.Digest.Enabled)
	assert.Equal(t, "https://api.open-meteo.com/v1/forecast", cfg.Weather.BaseURL)
	assert.Equal(t, 16, cfg.Weather.ForecastDays)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	chTempDir(t)
	t.Setenv("TEAMCAL_AUTH_JWT_SECRET", testSecret)
	t.Setenv("TEAMCAL_DIGEST_ENABLED", "false")
	t.Setenv("TEAMCAL_SERVER_PORT", "9999")
	t.Setenv("TEAMCAL_STORAGE_TASKS_FILE", "/data/tasks.json")
	t.Setenv("TEAMCAL_DIGEST_TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "/data/tasks.json", cfg.Storage.TasksFile)
	assert.Equal(t, "UTC", cfg.Digest.Timezone)
}

func TestLoadConfigFile(t *testing.T) {
	chTempDir(t)
	t.Setenv("TEAMCAL_DIGEST_ENABLED", "false")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(wd, "config.yaml"), []byte(`
server:
  port: 3000
auth:
  jwt_secret: `+testSecret+`
storage:
  export_dir: /tmp/exports
`), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "/tmp/exports", cfg.Storage.ExportDir)
	assert.Equal(t, "tasks.json", cfg.Storage.TasksFile, "unset keys keep defaults")
}

func TestLoadRejectsMissingSecret(t *testing.T) {
	chTempDir(t)
	t.Setenv("TEAMCAL_DIGEST_ENABLED", "false")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsShortSecret(t *testing.T) {
	chTempDir(t)
	t.Setenv("TEAMCAL_AUTH_JWT_SECRET", "short")
	t.Setenv("TEAMCAL_DIGEST_ENABLED", "false")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDigestRequiresMailSettings(t *testing.T) {
	chTempDir(t)
	t.Setenv("TEAMCAL_AUTH_JWT_SECRET", testSecret)
	t.Setenv("TEAMCAL_DIGEST_ENABLED", "true")

	_, err := Load()
	require.Error(t, err, "an enabled digest without a relay must not boot")

	t.Setenv("TEAMCAL_MAIL_HOST", "smtp.example.com")
	t.Setenv("TEAMCAL_MAIL_FROM", "digest@example.com")
	t.Setenv("TEAMCAL_MAIL_USERNAME", "digest")
	t.Setenv("TEAMCAL_MAIL_PASSWORD", "relay-password")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, 3, cfg.Mail.MaxRetries)
}
